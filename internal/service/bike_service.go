package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/pedalmarket/backend/internal/imageutil"
	"github.com/pedalmarket/backend/internal/model"
	"github.com/pedalmarket/backend/internal/repository"
	"gorm.io/gorm"
)

// SortDirection selects the price ordering of search results. It is a
// two-valued choice, not an extension point.
type SortDirection string

const (
	PriceAscending  SortDirection = "asc"
	PriceDescending SortDirection = "desc"
)

// SearchFilters are combined with AND; zero values impose no constraint.
type SearchFilters struct {
	Size     string
	MaxPrice *float64
	Brand    string
	BikeType string
}

// BikeUpdate carries the fields an owner may change after listing. Owner and
// image are deliberately absent.
type BikeUpdate struct {
	Brand       string
	Size        string
	Description string
	Price       float64
	Place       string
}

type BikeService interface {
	Create(ctx context.Context, typeTag, brand, size, description string, price float64, place string, image []byte, ownerID uint64) (*model.Bike, error)
	Get(ctx context.Context, id uint64) (*model.Bike, error)
	List(ctx context.Context) ([]model.Bike, error)
	ListByOwner(ctx context.Context, userID uint64) ([]model.Bike, error)
	Search(ctx context.Context, filters SearchFilters, dir SortDirection) ([]model.Bike, error)
	Update(ctx context.Context, id, actorID uint64, upd BikeUpdate) (*model.Bike, error)
	Delete(ctx context.Context, id, actorID uint64) error
}

type bikeService struct {
	bikeRepo repository.BikeRepository
	userRepo repository.UserRepository
	msgRepo  repository.MessageRepository
}

func NewBikeService(bikeRepo repository.BikeRepository, userRepo repository.UserRepository, msgRepo repository.MessageRepository) BikeService {
	return &bikeService{bikeRepo: bikeRepo, userRepo: userRepo, msgRepo: msgRepo}
}

func (s *bikeService) Create(ctx context.Context, typeTag, brand, size, description string, price float64, place string, image []byte, ownerID uint64) (*model.Bike, error) {
	bike, err := model.NewBike(typeTag, brand, size, description, price, place, ownerID)
	if err != nil {
		return nil, err
	}
	bike.Image = image
	if err := s.bikeRepo.Create(ctx, bike); err != nil {
		return nil, err
	}
	fillImagePath(bike)
	return bike, nil
}

func (s *bikeService) Get(ctx context.Context, id uint64) (*model.Bike, error) {
	bike, err := s.bikeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	fillImagePath(bike)
	return bike, nil
}

func (s *bikeService) List(ctx context.Context) ([]model.Bike, error) {
	bikes, err := s.bikeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	fillImagePaths(bikes)
	return bikes, nil
}

func (s *bikeService) ListByOwner(ctx context.Context, userID uint64) ([]model.Bike, error) {
	bikes, err := s.bikeRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	fillImagePaths(bikes)
	return bikes, nil
}

// Search filters the full listing set in memory and sorts by price. The sort
// is stable: equal prices keep the candidate order, which keeps paginated
// display reproducible.
func (s *bikeService) Search(ctx context.Context, filters SearchFilters, dir SortDirection) ([]model.Bike, error) {
	bikes, err := s.bikeRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]model.Bike, 0, len(bikes))
	for _, b := range bikes {
		if filters.Size != "" && !strings.EqualFold(b.Size, filters.Size) {
			continue
		}
		if filters.MaxPrice != nil && b.Price > *filters.MaxPrice {
			continue
		}
		if filters.Brand != "" && !strings.EqualFold(b.Brand, filters.Brand) {
			continue
		}
		if filters.BikeType != "" && !strings.EqualFold(string(b.Type), filters.BikeType) {
			continue
		}
		filtered = append(filtered, b)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if dir == PriceDescending {
			return filtered[i].Price > filtered[j].Price
		}
		return filtered[i].Price < filtered[j].Price
	})

	fillImagePaths(filtered)
	return filtered, nil
}

func (s *bikeService) Update(ctx context.Context, id, actorID uint64, upd BikeUpdate) (*model.Bike, error) {
	bike, err := s.bikeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if bike.UserID != actorID {
		return nil, ErrForbidden
	}

	bike.Brand = upd.Brand
	bike.Size = upd.Size
	bike.Description = upd.Description
	bike.Price = upd.Price
	bike.Place = upd.Place

	if err := s.bikeRepo.Save(ctx, bike); err != nil {
		return nil, err
	}
	fillImagePath(bike)
	return bike, nil
}

// Delete removes the bike together with every wishlist entry and message that
// references it, so no dangling references survive. Only users whose wishlist
// actually contained the bike are written back. The steps are sequenced
// without compensation; atomicity is the database's concern.
func (s *bikeService) Delete(ctx context.Context, id, actorID uint64) error {
	bike, err := s.bikeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if bike.UserID != actorID {
		return ErrForbidden
	}

	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		for _, wb := range users[i].Wishlist {
			if wb.ID == id {
				if err := s.userRepo.RemoveWishlist(ctx, &users[i], bike); err != nil {
					return err
				}
				break
			}
		}
	}

	if err := s.msgRepo.DeleteByBike(ctx, id); err != nil {
		return err
	}
	return s.bikeRepo.Delete(ctx, id)
}

func fillImagePath(bike *model.Bike) {
	bike.ImagePath = imageutil.DataURL(bike.Image)
}

func fillImagePaths(bikes []model.Bike) {
	for i := range bikes {
		fillImagePath(&bikes[i])
	}
}
