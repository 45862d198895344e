package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"seances/internal/showtimes"
)

// programmeFile is either a list of cinemas under "cinemas" or a single cinema.
type programmeFile struct {
	Cinemas []showtimes.CinemaInput `yaml:"cinemas"`
}

// loadCinemas reads a YAML or JSON programme file. JSON documents are valid YAML.
func loadCinemas(path string, loc *time.Location) ([]*showtimes.Cinema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read programme: %w", err)
	}
	return parseCinemas(data, loc)
}

func parseCinemas(data []byte, loc *time.Location) ([]*showtimes.Cinema, error) {
	var file programmeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse programme: %w", err)
	}
	if len(file.Cinemas) == 0 {
		var single showtimes.CinemaInput
		if err := yaml.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("parse programme: %w", err)
		}
		if single.ID == "" && len(single.Showtimes) == 0 {
			return nil, fmt.Errorf("parse programme: no cinema found")
		}
		file.Cinemas = []showtimes.CinemaInput{single}
	}

	cinemas := make([]*showtimes.Cinema, 0, len(file.Cinemas))
	for _, in := range file.Cinemas {
		c, err := in.Cinema(loc)
		if err != nil {
			return nil, err
		}
		cinemas = append(cinemas, c)
	}
	return cinemas, nil
}

func loadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}
