// Package chat turns raw upstream records into the canonical chat
// entities the inbox renders. Every function in here is total: missing or
// malformed fields map to documented fallbacks, never to an error.
package chat

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/boxpad/boxpad-api/models"
)

// Palette is the fixed ordered color cycle for avatar bubbles. Color
// assignment is index mod len(Palette), stable for a given load order.
var Palette = []string{"purple", "yellow", "blue", "orange", "green"}

const unknownUser = "Unknown User"

// overridable in tests
var now = time.Now

// NormalizeUser maps one raw user-like record into a ChatUser. Field
// precedence: name, else firstName+lastName, else "Unknown User"; phone,
// else phoneNumber; image, else avatar. A missing id falls back to the
// positional index.
func NormalizeUser(raw models.RawRecord, index int) models.ChatUser {
	id, ok := raw.Int("id")
	if !ok {
		id = index
	}

	name := raw.String("name")
	if name == "" {
		name = strings.TrimSpace(raw.String("firstName") + " " + raw.String("lastName"))
	}
	if name == "" {
		name = unknownUser
	}

	phone := raw.String("phone")
	if phone == "" {
		phone = raw.String("phoneNumber")
	}

	var avatar *string
	if s := raw.String("image"); s != "" {
		avatar = &s
	} else if s := raw.String("avatar"); s != "" {
		avatar = &s
	}

	initials := Initials(name)

	return models.ChatUser{
		ID:      id,
		Key:     strconv.Itoa(id),
		Name:    name,
		Email:   raw.String("email"),
		Phone:   phone,
		Initial: string([]rune(initials)[:1]),
		Color:   Palette[mod(index, len(Palette))],
		Avatar:  avatar,
	}
}

// NormalizeMessage maps one raw comment- or post-like record into a
// Message. Text precedence: body, else content; author precedence: name,
// else email, else "User". The timestamp is the wall clock at transform
// time, the source has no time field of its own.
func NormalizeMessage(raw models.RawRecord, fromUser bool) models.Message {
	id, _ := raw.Int("id")

	text := raw.String("body")
	if text == "" {
		text = raw.String("content")
	}

	author := raw.String("name")
	if author == "" {
		author = raw.String("email")
	}
	if author == "" {
		author = "User"
	}

	return models.Message{
		ID:        id,
		Text:      text,
		Timestamp: now().Format("15:04"),
		FromUser:  fromUser,
		Author:    author,
	}
}

// Initials returns the first letter of up to two whitespace-separated
// tokens of name, uppercased. A name with no tokens yields "U".
func Initials(name string) string {
	var initials []rune
	for _, token := range strings.Fields(name) {
		initials = append(initials, unicode.ToUpper([]rune(token)[0]))
		if len(initials) == 2 {
			break
		}
	}
	if len(initials) == 0 {
		return "U"
	}
	return string(initials)
}

// mod is the non-negative remainder, raw ids can be anything.
func mod(n, m int) int {
	return ((n % m) + m) % m
}
