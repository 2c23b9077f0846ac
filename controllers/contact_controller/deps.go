package contact_controller

import (
	"github.com/Tahir1605/frame-theory/repository"
	"github.com/Tahir1605/frame-theory/services"
)

var (
	contactRepo repository.ContactRepository
	mailer      *services.ResendClient
)

// Init wires the handler dependencies at startup, or with doubles in tests.
// mailClient may be nil; notifications are then skipped.
func Init(repo repository.ContactRepository, mailClient *services.ResendClient) {
	contactRepo = repo
	mailer = mailClient
}
