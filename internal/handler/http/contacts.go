package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/app"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
)

// createContact stores a contact with its addresses for the authenticated
// user.
func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.forward(w, r, opCreateContact.name, opCreateContact.failed, ErrNoIdentity)
		return
	}

	input, err := decodeJSON(w, r)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	contact, err := h.services.ContactService.CreateContact(r.Context(), identity.UserID, input)
	if err != nil {
		h.fail(w, r, opCreateContact, err)
		return
	}

	respond(w, r, http.StatusCreated, app.MsgContactCreated, contact)
}
