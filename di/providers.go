package di

import (
	bookingService "hotel/internal/domains/booking/service"
	facilityBookingService "hotel/internal/domains/facilitybooking/service"
	"hotel/internal/jobs"
)

// expirers lists the services whose unpaid holds the scheduler releases.
func expirers(rooms bookingService.Booking, facilities facilityBookingService.FacilityBooking) map[string]jobs.Expirer {
	return map[string]jobs.Expirer{
		"room_bookings":     rooms,
		"facility_bookings": facilities,
	}
}
