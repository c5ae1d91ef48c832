package domain

import "strings"

// ShowDetails describes one screening. Screen, time, theatre and movie
// together identify the show; two screenings with the same four values are
// the same show.
type ShowDetails struct {
	Screen      string
	Time        string
	TheatreName string
	MovieName   string
	Image       string
}

// ID derives the show identity by joining the four identifying fields with
// "-", in declaration order. The separator is not escaped, so a field value
// containing "-" can collide with another show; the catalog data never does
// this, but callers should not treat the identity as parseable.
func (d ShowDetails) ID() string {
	return strings.Join([]string{d.Screen, d.Time, d.TheatreName, d.MovieName}, "-")
}
