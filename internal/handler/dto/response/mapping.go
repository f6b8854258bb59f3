package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// LocalDateTimeLayout renders booking times as the local literals they were stored as.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(LocalDateTimeLayout), nil
			},
		},
	},
}

func copyInto[T any](from any) (*T, error) {
	var to T
	if err := copier.CopyWithOption(&to, from, copyOption); err != nil {
		return nil, err
	}
	return &to, nil
}
