package repository

import (
	"encoding/json"
	"fmt"
	"time"

	cartModel "lumina-storefront/internal/domains/cart/model"
	"lumina-storefront/internal/domains/order/model"
	"lumina-storefront/internal/shared"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const orderColumns = `id::text, items, total::text, status, customer_name, date`

type orderRow struct {
	ID           string
	Items        []byte
	Total        string
	Status       string
	CustomerName string
	Date         time.Time
}

func scanOrderRow(row pgx.Row) (orderRow, error) {
	var r orderRow
	err := row.Scan(&r.ID, &r.Items, &r.Total, &r.Status, &r.CustomerName, &r.Date)
	return r, err
}

func (r orderRow) decode() (model.Order, error) {
	total, err := decimal.NewFromString(r.Total)
	if err != nil {
		return model.Order{}, fmt.Errorf("%w: order %s: total %q", shared.ErrMalformedRow, r.ID, r.Total)
	}

	items := make([]cartModel.CartItem, 0)
	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &items); err != nil {
			return model.Order{}, fmt.Errorf("%w: order %s: items: %v", shared.ErrMalformedRow, r.ID, err)
		}
	}

	o := model.Order{
		ID:           r.ID,
		Items:        items,
		Total:        total,
		Status:       model.Status(r.Status),
		CustomerName: r.CustomerName,
		Date:         r.Date,
	}
	if err := o.CheckStored(); err != nil {
		return model.Order{}, fmt.Errorf("%w: %v", shared.ErrMalformedRow, err)
	}
	return o, nil
}

func decimalFromText(v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q", shared.ErrMalformedRow, v)
	}
	return d, nil
}
