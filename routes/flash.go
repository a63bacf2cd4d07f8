/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/gob"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
)

// FlashType represents the type of flash message
type FlashType string

const (
	FlashError   FlashType = "error"
	FlashSuccess FlashType = "success"
)

// flashSessionKey holds the pending flash until the next rendered page.
const flashSessionKey = "tanggap::flash"

// FlashMessage represents a flash message to be displayed to the user
type FlashMessage struct {
	Type    FlashType
	Message string
}

func init() {
	// Register FlashMessage with gob for session serialization
	gob.Register(FlashMessage{})
}

// SetErrorFlash sets an error flash message in the session
func SetErrorFlash(s session.Session, message string) {
	s.Set(flashSessionKey, FlashMessage{Type: FlashError, Message: message})
}

// SetSuccessFlash sets a success flash message in the session
func SetSuccessFlash(s session.Session, message string) {
	s.Set(flashSessionKey, FlashMessage{Type: FlashSuccess, Message: message})
}

// FlashInjector moves a pending flash message into the template data.
func FlashInjector() flamego.Handler {
	return func(s session.Session, data template.Data) {
		msg, ok := s.Get(flashSessionKey).(FlashMessage)
		if !ok {
			return
		}

		s.Delete(flashSessionKey)
		data["Flash"] = msg
	}
}
