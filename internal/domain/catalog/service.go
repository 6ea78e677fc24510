package catalog

import (
	"context"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

// ListDrugs devuelve las drogas, opcionalmente filtradas por categoría.
func (s *Service) ListDrugs(ctx context.Context, categoryID string) ([]Drug, error) {
	drugs, err := s.repo.ListDrugs(ctx)
	if err != nil {
		return nil, err
	}

	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return drugs, nil
	}

	out := make([]Drug, 0, len(drugs))
	for _, d := range drugs {
		if d.CategoryID == categoryID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Service) GetDrug(ctx context.Context, id string) (Drug, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Drug{}, ErrNotFound
	}
	return s.repo.GetDrugByID(ctx, id)
}

// DrugGroup agrupa variantes de dilución de la misma droga para el selector
// de la vista. El orden de Variants respeta el orden del catálogo.
type DrugGroup struct {
	GroupName string
	Variants  []Drug
}

// GroupDrugs agrupa por GroupName manteniendo orden estable de aparición.
func (s *Service) GroupDrugs(ctx context.Context, categoryID string) ([]DrugGroup, error) {
	drugs, err := s.ListDrugs(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	index := map[string]int{}
	groups := make([]DrugGroup, 0)
	for _, d := range drugs {
		i, ok := index[d.GroupName]
		if !ok {
			i = len(groups)
			index[d.GroupName] = i
			groups = append(groups, DrugGroup{GroupName: d.GroupName})
		}
		groups[i].Variants = append(groups[i].Variants, d)
	}

	return groups, nil
}
