package teams

import "strings"

// Team is a followed team from the static registry. Immutable once loaded.
type Team struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	League      string `json:"league"`
	SportTag    string `json:"sportTag"`
}

// Group is the set of followed teams sharing one sport tag.
type Group struct {
	SportTag string
	Teams    []Team
}

// PartitionBySport groups teams by sport tag, keeping the order in which tags first appear.
func PartitionBySport(roster []Team) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, t := range roster {
		tag := strings.ToLower(strings.TrimSpace(t.SportTag))
		if tag == "" {
			continue
		}
		i, ok := index[tag]
		if !ok {
			i = len(groups)
			index[tag] = i
			groups = append(groups, Group{SportTag: tag})
		}
		groups[i].Teams = append(groups[i].Teams, t)
	}
	return groups
}
