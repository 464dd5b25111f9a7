package booking

import "github.com/sirupsen/logrus"

// LogRouter is the stub hand-off target: it records the confirmation
// payload and relinquishes control. Real page transition lives with
// the presentation layer.
type LogRouter struct {
	logger *logrus.Logger
}

func NewLogRouter(logger *logrus.Logger) *LogRouter {
	return &LogRouter{logger: logger}
}

func (r *LogRouter) HandOff(payload Payload) {
	entry := r.logger.WithFields(logrus.Fields{
		"session_id":  payload.SessionID,
		"grand_total": payload.Fare.GrandTotal,
	})
	if payload.Hotel != nil {
		entry = entry.WithField("hotel_id", payload.Hotel.ID)
	}
	if payload.Itinerary != nil {
		entry = entry.WithField("legs", len(payload.Itinerary.Legs))
	}
	entry.Info("booking confirmation handed off")
}
