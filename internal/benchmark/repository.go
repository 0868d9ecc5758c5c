package benchmark

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Band is one benchmark range: [min, preferred, max] plus the data source.
// Preferred holds one value, or a low/high pair when the sweet spot is a
// range rather than a point.
type Band struct {
	Min       float64
	Preferred []float64
	Max       float64
	Source    string
}

// UnmarshalYAML decodes the compact sequence form used by benchmark files:
//
//	cap_rate: [4.5, 5.5, 7.0, "RCA Analytics Q4 2024"]
//	occupancy: [90, [93, 96], 98, "NMHC Market Report Q4 2024"]
func (b *Band) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) < 3 {
		return fmt.Errorf("benchmark band must be a sequence of at least [min, preferred, max]")
	}
	if err := node.Content[0].Decode(&b.Min); err != nil {
		return fmt.Errorf("band min: %w", err)
	}
	pref := node.Content[1]
	if pref.Kind == yaml.SequenceNode {
		if err := pref.Decode(&b.Preferred); err != nil {
			return fmt.Errorf("band preferred range: %w", err)
		}
	} else {
		var v float64
		if err := pref.Decode(&v); err != nil {
			return fmt.Errorf("band preferred: %w", err)
		}
		b.Preferred = []float64{v}
	}
	if err := node.Content[2].Decode(&b.Max); err != nil {
		return fmt.Errorf("band max: %w", err)
	}
	if len(node.Content) > 3 {
		if err := node.Content[3].Decode(&b.Source); err != nil {
			return fmt.Errorf("band source: %w", err)
		}
	}
	return nil
}

// Repository holds benchmark bands keyed by asset class, subclass, and
// metric. Keys are normalized at construction so lookups are tolerant of
// spacing, hyphenation, and case.
type Repository struct {
	classes map[string]map[string]map[string]Band
	// subclass declaration order per class, for the first-subclass fallback
	order map[string][]string
}

// NewRepository creates a repository over the built-in benchmark table
func NewRepository() *Repository {
	return builtinRepository
}

// NewRepositoryFromFile loads a replacement benchmark table from a YAML file.
// The file structure mirrors the built-in table: asset class -> subclass ->
// metric -> band sequence. Subclass order in the file determines the fallback
// subclass for each asset class.
func NewRepositoryFromFile(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read benchmark table: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse benchmark table: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("benchmark table is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("benchmark table must be a mapping of asset classes")
	}

	repo := &Repository{
		classes: make(map[string]map[string]map[string]Band),
		order:   make(map[string][]string),
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		class := normalizeKey(root.Content[i].Value)
		subNode := root.Content[i+1]
		if subNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("asset class %q must map subclasses", class)
		}
		repo.classes[class] = make(map[string]map[string]Band)
		for j := 0; j+1 < len(subNode.Content); j += 2 {
			subclass := normalizeKey(subNode.Content[j].Value)
			var metrics map[string]Band
			if err := subNode.Content[j+1].Decode(&metrics); err != nil {
				return nil, fmt.Errorf("subclass %s/%s: %w", class, subclass, err)
			}
			normalized := make(map[string]Band, len(metrics))
			for name, band := range metrics {
				normalized[normalizeMetric(name)] = band
			}
			repo.classes[class][subclass] = normalized
			repo.order[class] = append(repo.order[class], subclass)
		}
	}
	return repo, nil
}

// Lookup finds the band for a metric. An unknown subclass falls back to the
// asset class's first subclass so partially classified deals still get
// benchmarked.
func (r *Repository) Lookup(assetClass, subclass, metric string) (Band, bool) {
	class := normalizeKey(assetClass)
	sub := normalizeKey(subclass)
	name := normalizeMetric(metric)

	subclasses, ok := r.classes[class]
	if !ok {
		return Band{}, false
	}
	if metrics, ok := subclasses[sub]; ok {
		if band, ok := metrics[name]; ok {
			return band, true
		}
		return Band{}, false
	}
	if fallback, ok := r.fallbackSubclass(class); ok {
		if band, ok := subclasses[fallback][name]; ok {
			return band, true
		}
	}
	return Band{}, false
}

// MetricsFor returns all bands for an asset class, using the first subclass
// when the requested one is unknown. The returned map is a copy.
func (r *Repository) MetricsFor(assetClass, subclass string) map[string]Band {
	class := normalizeKey(assetClass)
	sub := normalizeKey(subclass)

	subclasses, ok := r.classes[class]
	if !ok {
		return map[string]Band{}
	}
	metrics, ok := subclasses[sub]
	if !ok {
		fallback, found := r.fallbackSubclass(class)
		if !found {
			return map[string]Band{}
		}
		metrics = subclasses[fallback]
	}
	out := make(map[string]Band, len(metrics))
	for name, band := range metrics {
		out[name] = band
	}
	return out
}

// Subclasses returns the subclass names for an asset class in table order
func (r *Repository) Subclasses(assetClass string) []string {
	return append([]string(nil), r.order[normalizeKey(assetClass)]...)
}

// HasAssetClass reports whether the asset class exists in the table
func (r *Repository) HasAssetClass(assetClass string) bool {
	_, ok := r.classes[normalizeKey(assetClass)]
	return ok
}

func (r *Repository) fallbackSubclass(class string) (string, bool) {
	order := r.order[class]
	if len(order) == 0 {
		return "", false
	}
	return order[0], true
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

func normalizeMetric(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}
