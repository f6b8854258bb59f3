package readstore

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking.go -package=readstoremock

import (
	"context"
	"time"

	"amenity-booking/internal/domain/booking"
	"amenity-booking/internal/infra"
	"amenity-booking/internal/infra/repository/converter"
	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/internal/pkg/pgconv"
	"amenity-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListBookingViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsParams) ([]sqlc.ListBookingViewsRow, error)
	ListOverlappingBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingBookingsParams) ([]sqlc.ListOverlappingBookingsRow, error)
	ListOccupiedSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOccupiedSlotsParams) ([]sqlc.ListOccupiedSlotsRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(sqlc.ListBookingViewsRow(row)), nil
}

func (r *BookingReadStore) FindFirstPage(ctx context.Context, filters queries.BookingFilters, limit int32) ([]*queries.BookingView, error) {
	params := listParams(filters, limit)
	rows, err := r.queries.ListBookingViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err)
	}
	return mapBookingRows(rows), nil
}

func (r *BookingReadStore) FindKeyset(ctx context.Context, filters queries.BookingFilters, lastStartAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	params := listParams(filters, limit)
	params.AfterStart = pgconv.TimestampToPgtype(lastStartAt)
	params.AfterID = pgconv.UUIDToPgtype(lastID)
	rows, err := r.queries.ListBookingViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset", err)
	}
	return mapBookingRows(rows), nil
}

func (r *BookingReadStore) OccupiedSlots(ctx context.Context, spaceID uuid.UUID, day booking.Interval) ([]*queries.OccupiedSlotView, error) {
	rows, err := r.queries.ListOccupiedSlots(ctx, r.db, sqlc.ListOccupiedSlotsParams{
		SpaceID:  spaceID,
		DayStart: pgconv.TimestampToPgtype(day.Start()),
		DayEnd:   pgconv.TimestampToPgtype(day.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied slots", err)
	}
	result := make([]*queries.OccupiedSlotView, len(rows))
	for i, row := range rows {
		result[i] = &queries.OccupiedSlotView{
			StartAt: pgconv.TimeFromTimestamp(row.StartAt),
			EndAt:   pgconv.TimeFromTimestamp(row.EndAt),
			State:   row.Status,
		}
	}
	return result, nil
}

// FindEntity loads the aggregate for the write side. The row stays locked until the transaction ends.
func (r *BookingReadStore) FindEntity(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return converter.BookingFromRow(row), nil
}

// SlotsOverlapping returns held slots of spaceID that overlap iv.
func (r *BookingReadStore) SlotsOverlapping(ctx context.Context, spaceID uuid.UUID, iv booking.Interval) ([]booking.Slot, error) {
	rows, err := r.queries.ListOverlappingBookings(ctx, r.db, sqlc.ListOverlappingBookingsParams{
		SpaceID:     spaceID,
		WindowStart: pgconv.TimestampToPgtype(iv.Start()),
		WindowEnd:   pgconv.TimestampToPgtype(iv.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}
	slots := make([]booking.Slot, len(rows))
	for i, row := range rows {
		slots[i] = converter.SlotFromOverlapRow(row)
	}
	return slots, nil
}

func listParams(f queries.BookingFilters, limit int32) sqlc.ListBookingViewsParams {
	params := sqlc.ListBookingViewsParams{
		SpaceID: pgconv.UUIDPtrToPgtype(f.SpaceID),
		UserID:  pgconv.UUIDPtrToPgtype(f.UserID),
		FromAt:  pgconv.TimestampPtrToPgtype(f.From),
		ToAt:    pgconv.TimestampPtrToPgtype(f.To),
		Limit:   limit,
	}
	if f.State != nil {
		params.Status = pgconv.TextToPgtype(f.State.String())
	}
	if f.Category != nil {
		params.Category = pgconv.TextToPgtype(f.Category.String())
	}
	return params
}

func toBookingView(row sqlc.ListBookingViewsRow) *queries.BookingView {
	return &queries.BookingView{
		ID:            row.ID,
		SpaceID:       row.SpaceID,
		SpaceName:     row.SpaceName,
		SpaceCategory: row.SpaceCategory,
		UserID:        row.UserID,
		UserName:      row.UserName,
		UserEmail:     row.UserEmail,
		UnitID:        pgconv.UUIDPtrFromPgtype(row.UnitID),
		UnitLabel:     pgconv.StringPtrFromPgtype(row.UnitLabel),
		StartAt:       pgconv.TimeFromTimestamp(row.StartAt),
		EndAt:         pgconv.TimeFromTimestamp(row.EndAt),
		Headcount:     pgconv.Int32PtrFromPgtype(row.Headcount),
		State:         row.Status,
		Reason:        pgconv.StringPtrFromPgtype(row.Reason),
		Notes:         pgconv.StringPtrFromPgtype(row.Notes),
		TotalPrice:    pgconv.Int64PtrFromPgtype(row.TotalPrice),
		CreatedBy:     row.CreatedBy,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func mapBookingRows(rows []sqlc.ListBookingViewsRow) []*queries.BookingView {
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(row)
	}
	return result
}
