package repository

import (
	"kirana-connect/pkg/storage"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Store   StoreRepository
	Product ProductRepository
	Cart    CartRepository
	Order   OrderRepository
}

func NewRepository(users *storage.FileStore, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(users, log),
		Store:   NewStoreRepository(SeedStores(), log),
		Product: NewProductRepository(SeedProducts(), log),
		Cart:    NewCartRepository(log),
		Order:   NewOrderRepository(log),
	}
}
