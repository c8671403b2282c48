package entity

type StoreType string

const (
	StoreTypeRetail     StoreType = "Retail"
	StoreTypePharmacy   StoreType = "Pharmacy"
	StoreTypeHomeSeller StoreType = "HomeSeller"
)

type Store struct {
	ID           string
	Name         string
	Rating       float64 // running average, one decimal place
	ReviewCount  int
	Distance     string
	DeliveryTime string
	Image        string
	Category     []string
	IsBestPrice  bool
	Type         StoreType
}
