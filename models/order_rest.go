package models

// IncomingOrderRequest is the body of the create-order endpoint
type IncomingOrderRequest struct {
	Store *Store     `json:"store"`
	Order *OrderData `json:"order" validate:"required"`
}

// IncomingUpdateOrderRequest is the body of the update-order endpoint
type IncomingUpdateOrderRequest struct {
	StoreID string           `json:"store_id"`
	Order   *UpdateOrderData `json:"order"`
}

// IncomingTrackingRequest is the body of the order tracking endpoint
type IncomingTrackingRequest struct {
	Store    *Store        `json:"store"`
	Tracking *TrackingInfo `json:"tracking" validate:"required"`
}
