package converter

import (
	"amenity-booking/internal/domain/booking"
	sqlc "amenity-booking/internal/infra/sqlc/generated"
	"amenity-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:         b.ID(),
		SpaceID:    b.SpaceID(),
		UserID:     b.UserID(),
		UnitID:     pgconv.UUIDPtrToPgtype(b.UnitID()),
		StartAt:    pgconv.TimestampToPgtype(b.Interval().Start()),
		EndAt:      pgconv.TimestampToPgtype(b.Interval().End()),
		Headcount:  pgconv.Int32PtrToPgtype(b.Headcount()),
		Status:     b.Status().String(),
		Reason:     pgconv.StringPtrToPgtype(b.Reason()),
		Notes:      pgconv.StringPtrToPgtype(b.Notes()),
		TotalPrice: pgconv.Int64PtrToPgtype(b.TotalPrice()),
		CreatedBy:  b.CreatedBy(),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	return sqlc.UpdateBookingParams{
		ID:         b.ID(),
		SpaceID:    b.SpaceID(),
		UnitID:     pgconv.UUIDPtrToPgtype(b.UnitID()),
		StartAt:    pgconv.TimestampToPgtype(b.Interval().Start()),
		EndAt:      pgconv.TimestampToPgtype(b.Interval().End()),
		Headcount:  pgconv.Int32PtrToPgtype(b.Headcount()),
		Status:     b.Status().String(),
		Reason:     pgconv.StringPtrToPgtype(b.Reason()),
		Notes:      pgconv.StringPtrToPgtype(b.Notes()),
		TotalPrice: pgconv.Int64PtrToPgtype(b.TotalPrice()),
	}
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	return booking.ReconstructBooking(booking.Snapshot{
		ID:         row.ID,
		SpaceID:    row.SpaceID,
		UserID:     row.UserID,
		UnitID:     pgconv.UUIDPtrFromPgtype(row.UnitID),
		Interval:   booking.RestoreInterval(pgconv.TimeFromTimestamp(row.StartAt), pgconv.TimeFromTimestamp(row.EndAt)),
		Headcount:  pgconv.Int32PtrFromPgtype(row.Headcount),
		Status:     booking.Status(row.Status),
		Reason:     pgconv.StringPtrFromPgtype(row.Reason),
		Notes:      pgconv.StringPtrFromPgtype(row.Notes),
		TotalPrice: pgconv.Int64PtrFromPgtype(row.TotalPrice),
		CreatedBy:  row.CreatedBy,
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func SlotFromOverlapRow(row sqlc.ListOverlappingBookingsRow) booking.Slot {
	return booking.Slot{
		BookingID: row.ID,
		Interval:  booking.RestoreInterval(pgconv.TimeFromTimestamp(row.StartAt), pgconv.TimeFromTimestamp(row.EndAt)),
		Status:    booking.Status(row.Status),
	}
}
