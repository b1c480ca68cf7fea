package fixtures

import (
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"sports-hub-service/internal/domain/events"
	"sports-hub-service/internal/domain/teams"
)

// Format selects the fixture encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor infers the encoding from a fixture path; anything that is not .yaml/.yml is JSON.
func FormatFor(p string) Format {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// teamRecord is the on-disk shape of a followed team. ids may be numbers or strings.
type teamRecord struct {
	ID   any    `json:"id" yaml:"id"`
	Team string `json:"team" yaml:"team"`
	Type string `json:"type" yaml:"type"`
}

// DecodeTeams parses a team fixture into the registry model.
func DecodeTeams(r io.Reader, format Format) ([]teams.Team, error) {
	var records []teamRecord
	if err := decode(r, format, &records); err != nil {
		return nil, fmt.Errorf("%w: decode teams: %v", ErrFixture, err)
	}

	out := make([]teams.Team, 0, len(records))
	for i, rec := range records {
		name := strings.TrimSpace(rec.Team)
		tag := strings.ToLower(strings.TrimSpace(rec.Type))
		if name == "" || tag == "" {
			return nil, fmt.Errorf("%w: team entry %d needs both team and type", ErrFixture, i)
		}
		id := ""
		if rec.ID != nil {
			id = fmt.Sprint(rec.ID)
		}
		out = append(out, teams.Team{
			ID:          id,
			DisplayName: name,
			League:      strings.ToUpper(tag),
			SportTag:    tag,
		})
	}
	return out, nil
}

// DecodeEvents parses a fallback fixture of canonical events and validates every entry.
func DecodeEvents(r io.Reader, format Format) ([]events.Event, error) {
	var list []events.Event
	if err := decode(r, format, &list); err != nil {
		return nil, fmt.Errorf("%w: decode events: %v", ErrFixture, err)
	}
	for _, ev := range list {
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFixture, err)
		}
	}
	if list == nil {
		list = []events.Event{}
	}
	return list, nil
}

func decode(r io.Reader, format Format, out any) error {
	switch format {
	case FormatYAML:
		return yaml.NewDecoder(r).Decode(out)
	default:
		return json.NewDecoder(r).Decode(out)
	}
}
