//go:build protogen

package grpcserver

import (
	"context"
	"time"

	"github.com/mehedi-hasan-dev/rentora/libs/db"
	catalogv1 "github.com/mehedi-hasan-dev/rentora/protos/gen/catalog/v1"
	"github.com/mehedi-hasan-dev/rentora/services/catalog-service/internal/bundles"
	"github.com/mehedi-hasan-dev/rentora/services/catalog-service/internal/storage"
	"google.golang.org/grpc"
)

const dateLayout = "2006-01-02"

type server struct {
	catalogv1.UnimplementedCatalogServiceServer
	pool *db.Pool
	repo *storage.Repository
}

func Register(grpcServer *grpc.Server, pool *db.Pool, repo *storage.Repository) {
	catalogv1.RegisterCatalogServiceServer(grpcServer, &server{pool: pool, repo: repo})
}

func (s *server) GetProduct(ctx context.Context, req *catalogv1.GetProductRequest) (*catalogv1.GetProductResponse, error) {
	if req.GetProductId() == "" {
		return &catalogv1.GetProductResponse{Found: false}, nil
	}
	product, err := s.repo.GetProduct(ctx, req.GetProductId())
	if err != nil {
		if storage.IsNotFound(err) {
			return &catalogv1.GetProductResponse{Found: false}, nil
		}
		return nil, err
	}
	if !product.Active {
		return &catalogv1.GetProductResponse{Found: false}, nil
	}
	return &catalogv1.GetProductResponse{
		Found:           true,
		ProductId:       product.ID,
		Name:            product.Name,
		DailyPriceCents: product.DailyPriceCents,
	}, nil
}

func (s *server) CheckSameDay(ctx context.Context, req *catalogv1.CheckSameDayRequest) (*catalogv1.CheckSameDayResponse, error) {
	if req.GetZoneId() == "" {
		return &catalogv1.CheckSameDayResponse{Found: false}, nil
	}
	zone, err := s.repo.GetZone(ctx, req.GetZoneId())
	if err != nil {
		if storage.IsNotFound(err) {
			return &catalogv1.CheckSameDayResponse{Found: false}, nil
		}
		return nil, err
	}
	return &catalogv1.CheckSameDayResponse{
		Found:            true,
		ZoneId:           zone.ID,
		Name:             zone.Name,
		SameDayAvailable: zone.SameDayAvailable,
		SameDayFeeCents:  zone.SameDayFeeCents,
		CutoffTime:       zone.CutoffTime,
	}, nil
}

func (s *server) QuoteBundle(ctx context.Context, req *catalogv1.QuoteBundleRequest) (*catalogv1.QuoteBundleResponse, error) {
	if req.GetBundleId() == "" {
		return &catalogv1.QuoteBundleResponse{Found: false}, nil
	}
	start, err := time.Parse(dateLayout, req.GetStartDate())
	if err != nil {
		return &catalogv1.QuoteBundleResponse{Found: false}, nil
	}
	end, err := time.Parse(dateLayout, req.GetEndDate())
	if err != nil {
		return &catalogv1.QuoteBundleResponse{Found: false}, nil
	}

	bundle, err := s.repo.GetBundle(ctx, req.GetBundleId())
	if err != nil {
		if storage.IsNotFound(err) {
			return &catalogv1.QuoteBundleResponse{Found: false}, nil
		}
		return nil, err
	}
	if !bundle.Active {
		return &catalogv1.QuoteBundleResponse{Found: false}, nil
	}

	quote := bundles.Compute(bundle, start, end)
	return &catalogv1.QuoteBundleResponse{
		Found:            true,
		BundleId:         quote.BundleID,
		BasePriceCents:   quote.BasePriceCents,
		BundlePriceCents: quote.BundlePriceCents,
		SavingsCents:     quote.SavingsCents,
		DiscountPercent:  quote.DiscountPercent,
	}, nil
}
