package utils

import "time"

// Application Constants
const (
	AppName    = "RidePool"
	AppVersion = "1.0.0"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Ride Constants
	MinSeatsPerRide     = 1
	MaxSeatsPerRide     = 8
	DefaultSearchRadius = 10.0 // kilometers
	MaxSearchRadius     = 50.0 // kilometers

	// Notification Constants
	NotificationTTL = 30 * 24 * time.Hour

	// Cache
	RideCacheTTL = 15 * time.Minute
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrMsgInvalidInput        = "invalid input"
	ErrMsgInternalServer      = "internal server error"
	ErrMsgUnauthorized        = "unauthorized"
	ErrMsgForbidden           = "forbidden"
	ErrMsgRideNotFound        = "ride not found"
	ErrMsgRequestNotFound     = "ride request not found"
	ErrMsgDuplicateRequest    = "you already have an active request for this ride"
	ErrMsgAlreadyResponded    = "this request has already been responded to"
	ErrMsgAlreadyCancelled    = "this request has already been cancelled"
	ErrMsgNotRequestOwner     = "you can only cancel your own requests"
	ErrMsgNotRideOwner        = "you can only respond to requests for your own rides"
	ErrMsgOwnRide             = "you cannot request your own ride"
	ErrMsgTryAgain            = "something went wrong, please try again"
)

// Cache Keys
const (
	CacheRidePrefix = "ride:"
	CacheUserPrefix = "user:"
)

// Event Types
const (
	EventRideCreated      = "ride_created"
	EventRideCancelled    = "ride_cancelled"
	EventRequestCreated   = "request_created"
	EventRequestAccepted  = "request_accepted"
	EventRequestRejected  = "request_rejected"
	EventRequestCancelled = "request_cancelled"
)

// Geographic Constants
const (
	EarthRadiusKM = 6371.0
)
