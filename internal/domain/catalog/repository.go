package catalog

import "context"

type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListDrugs(ctx context.Context) ([]Drug, error)
	GetDrugByID(ctx context.Context, id string) (Drug, error)
}
