package main

import (
	"context"
	"strings"

	"pkt.systems/pslog"
)

// ContactForm is the contact page submission.
type ContactForm struct {
	Name    string `form:"name" binding:"required,max=100"`
	Email   string `form:"email" binding:"required,email,max=254"`
	Message string `form:"message" binding:"required,max=5000"`
}

func (f *ContactForm) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
}

// ContactHandler receives validated contact submissions. Delivery (mail, a
// ticket queue) lives behind this interface.
type ContactHandler interface {
	HandleContact(ctx context.Context, form ContactForm) error
}

// logContactHandler records submissions in the request log and nothing else.
type logContactHandler struct{}

func (logContactHandler) HandleContact(ctx context.Context, form ContactForm) error {
	pslog.Ctx(ctx).Info("contact submission",
		"name", form.Name,
		"email", form.Email,
		"message_len", len(form.Message),
	)
	return nil
}
