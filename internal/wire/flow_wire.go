package wire

import (
	"sportello-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFlow(r chi.Router, flowHandler *adaptor.FlowHandler) {
	// The whole flow is anonymous: a flow id is the only handle a browser
	// needs, and it is unguessable.
	r.Route("/api/flows", func(r chi.Router) {
		// POST /api/flows - Start a booking flow
		r.Post("/", flowHandler.Start)

		// GET /api/flows/{id} - Current flow state
		r.Get("/{id}", flowHandler.Get)

		// POST /api/flows/{id}/intake - Submit intake, creates the payment session
		r.Post("/{id}/intake", flowHandler.SubmitIntake)

		// POST /api/flows/{id}/back - Edit details (back to intake)
		r.Post("/{id}/back", flowHandler.Back)

		// POST /api/flows/{id}/pay - Confirm the payment
		r.Post("/{id}/pay", flowHandler.Pay)

		// POST /api/flows/{id}/abandon - Abandon the flow
		r.Post("/{id}/abandon", flowHandler.Abandon)
	})

	// GET /booking/return - Payment provider redirect target
	r.Get("/booking/return", flowHandler.Return)
}
