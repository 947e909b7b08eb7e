//go:build protogen

package catalog

import (
	"context"
	"time"

	"github.com/mehedi-hasan-dev/rentora/libs/grpcx"
	catalogv1 "github.com/mehedi-hasan-dev/rentora/protos/gen/catalog/v1"
)

const dateLayout = "2006-01-02"

type grpcProvider struct {
	client catalogv1.CatalogServiceClient
}

func NewProvider(addr string) (Provider, error) {
	if addr == "" {
		return nil, nil
	}
	conn, err := grpcx.Dial(context.Background(), addr, grpcx.DialOptions{Timeout: 3 * time.Second})
	if err != nil {
		return nil, err
	}
	return &grpcProvider{client: catalogv1.NewCatalogServiceClient(conn)}, nil
}

func (p *grpcProvider) GetProduct(ctx context.Context, productID string) (Product, bool, error) {
	resp, err := p.client.GetProduct(ctx, &catalogv1.GetProductRequest{ProductId: productID})
	if err != nil {
		return Product{}, false, err
	}
	if !resp.GetFound() {
		return Product{}, false, nil
	}
	return Product{
		ID:              resp.GetProductId(),
		Name:            resp.GetName(),
		DailyPriceCents: resp.GetDailyPriceCents(),
	}, true, nil
}

func (p *grpcProvider) CheckSameDay(ctx context.Context, zoneID string) (Zone, bool, error) {
	resp, err := p.client.CheckSameDay(ctx, &catalogv1.CheckSameDayRequest{ZoneId: zoneID})
	if err != nil {
		return Zone{}, false, err
	}
	if !resp.GetFound() {
		return Zone{}, false, nil
	}
	return Zone{
		ID:               resp.GetZoneId(),
		Name:             resp.GetName(),
		SameDayAvailable: resp.GetSameDayAvailable(),
		SameDayFeeCents:  resp.GetSameDayFeeCents(),
		CutoffTime:       resp.GetCutoffTime(),
	}, true, nil
}

func (p *grpcProvider) QuoteBundle(ctx context.Context, bundleID string, start, end time.Time) (BundleQuote, bool, error) {
	resp, err := p.client.QuoteBundle(ctx, &catalogv1.QuoteBundleRequest{
		BundleId:  bundleID,
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
	})
	if err != nil {
		return BundleQuote{}, false, err
	}
	if !resp.GetFound() {
		return BundleQuote{}, false, nil
	}
	return BundleQuote{
		BundleID:         resp.GetBundleId(),
		BasePriceCents:   resp.GetBasePriceCents(),
		BundlePriceCents: resp.GetBundlePriceCents(),
		SavingsCents:     resp.GetSavingsCents(),
		DiscountPercent:  resp.GetDiscountPercent(),
	}, true, nil
}
