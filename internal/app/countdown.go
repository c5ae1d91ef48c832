package app

import (
	"fmt"
	"net/http"

	"github.com/showgrid/booking-api/internal/domain"
)

// BookingCountdown streams the post-booking redirect countdown as server-sent
// events: the full tick count immediately, one event per second counting down
// to zero, then a terminal redirect event. Closing the connection cancels the
// countdown through the request context.
func (app *Application) BookingCountdown(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		app.serverErrorResponse(w, r, fmt.Errorf("streaming unsupported by response writer"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	countdown := domain.NewCountdown()

	fmt.Fprintf(w, "data: %d\n\n", countdown.Ticks())
	flusher.Flush()

	err := countdown.Run(r.Context(), func(remaining int) {
		fmt.Fprintf(w, "data: %d\n\n", remaining)
		flusher.Flush()
	})
	if err != nil {
		// Client went away; nothing to write.
		return
	}

	fmt.Fprint(w, "event: redirect\ndata: /\n\n")
	flusher.Flush()
}
