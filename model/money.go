package model

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Money wraps decimal.Decimal so expense amounts survive the MongoDB round
// trip. decimal.Decimal has only unexported fields, so without a custom
// codec the driver would store an empty document; amounts are persisted as
// their exact string form instead. JSON marshaling is inherited from the
// embedded decimal.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(m.String())
}

func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	var s string
	if err := raw.Unmarshal(&s); err != nil {
		return fmt.Errorf("money: unmarshal bson value: %w", err)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("money: parse stored amount %q: %w", s, err)
	}
	m.Decimal = d
	return nil
}
