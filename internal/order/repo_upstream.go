package order

import (
	"context"
	"errors"
	"log"

	"github.com/MikeMC777/orders-payments/internal/upstream"
)

// UpstreamRepo keeps orders in the external Order API.
type UpstreamRepo struct{ api *upstream.OrderClient }

func NewUpstreamRepo(api *upstream.OrderClient) *UpstreamRepo { return &UpstreamRepo{api: api} }

// Create returns the *upstream.APIError unchanged for a non-success status.
func (r *UpstreamRepo) Create(ctx context.Context, o *Order) error {
	res, err := r.api.CreateOrderWithResponse(ctx, ToCreateRequest(o))
	if err != nil {
		return err
	}
	if res.Error != nil {
		return res.Error
	}
	log.Printf("[store] upstream created order id=%d location=%q", res.Content.ID, res.Header.Get("Location"))

	created := FromDTO(&res.Content)
	o.ID = created.ID
	if !created.CreatedAt.IsZero() {
		o.CreatedAt = created.CreatedAt
	}
	if len(created.Items) == len(o.Items) {
		for i := range o.Items {
			o.Items[i].ID = created.Items[i].ID
			o.Items[i].OrderID = created.ID
		}
	}
	return nil
}

func (r *UpstreamRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	d, err := r.api.GetOrder(ctx, id)
	if errors.Is(err, upstream.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return FromDTO(d), nil
}
