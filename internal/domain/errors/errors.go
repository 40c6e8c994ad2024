package errors

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalid = errors.New("invalid")

var ErrCollision = errors.New("collision")

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationError struct {
	Items []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Items) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed:\n")
	for _, item := range e.Items {
		b.WriteString(" - ")
		b.WriteString(item.Error())
		b.WriteString("\n")
	}
	return b.String()
}

func (e *ValidationError) Add(field, msg string) {
	e.Items = append(e.Items, FieldError{
		Field:   field,
		Message: msg,
	})
}

func (e ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func (e ValidationError) HasAny() bool {
	return len(e.Items) > 0
}

type CollisionGroup struct {
	Filename string
	Labels   []string
}

func (g CollisionGroup) Error() string {
	quoted := make([]string, 0, len(g.Labels))
	for _, l := range g.Labels {
		quoted = append(quoted, fmt.Sprintf("%q", l))
	}
	return fmt.Sprintf("%s: tags %s map to the same file", g.Filename, strings.Join(quoted, ", "))
}

type CollisionError struct {
	Groups []CollisionGroup
}

func (e CollisionError) Error() string {
	if len(e.Groups) == 0 {
		return "output filename collision"
	}

	var b strings.Builder
	b.WriteString("output filename collision:\n")
	for _, g := range e.Groups {
		b.WriteString(" - ")
		b.WriteString(g.Error())
		b.WriteString("\n")
	}
	return b.String()
}

func (e *CollisionError) Add(filename string, labels []string) {
	e.Groups = append(e.Groups, CollisionGroup{
		Filename: filename,
		Labels:   labels,
	})
}

func (e CollisionError) Is(target error) bool {
	return target == ErrCollision
}

func (e CollisionError) HasAny() bool {
	return len(e.Groups) > 0
}
