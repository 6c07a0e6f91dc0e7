package catalog

import "strings"

// Categories of provider capabilities.
const (
	CategoryText  = "text"
	CategoryImage = "image"
	CategoryMusic = "music"
	CategoryVideo = "video"
)

// Cost tiers used for catalog filtering.
const (
	CostTierFree    = "free"
	CostTierLowCost = "low-cost"
	CostTierPaid    = "paid"
)

// Descriptor holds static metadata about an integrable AI service.
type Descriptor struct {
	ID             string   `json:"id"`             // Unique slug.
	Name           string   `json:"name"`           // Display name.
	Description    string   `json:"description"`    // Short blurb.
	Category       string   `json:"category"`       // text, image, music, video.
	Pricing        string   `json:"pricing"`        // Human pricing summary.
	Website        string   `json:"website"`        // Provider site.
	RequiresAPIKey bool     `json:"requiresApiKey"` // Whether a key is needed.
	IsFree         bool     `json:"isFree"`         // Whether a free tier exists.
	CostTier       string   `json:"costTier"`       // free, low-cost, paid.
	Capabilities   []string `json:"capabilities"`   // Capability tags.
}

// Catalog is an immutable registry of provider descriptors.
type Catalog struct {
	byID    map[string]Descriptor
	ordered []Descriptor
}

// New builds the catalog from the built-in descriptor set.
func New() *Catalog {
	return newFromDescriptors(builtinDescriptors())
}

func newFromDescriptors(descriptors []Descriptor) *Catalog {
	c := &Catalog{
		byID:    make(map[string]Descriptor, len(descriptors)),
		ordered: make([]Descriptor, 0, len(descriptors)),
	}
	for _, d := range descriptors {
		if _, exists := c.byID[d.ID]; exists {
			continue
		}
		c.byID[d.ID] = d
		c.ordered = append(c.ordered, d)
	}
	return c
}

// Get returns the descriptor for the given id.
func (c *Catalog) Get(id string) (Descriptor, bool) {
	d, ok := c.byID[strings.ToLower(strings.TrimSpace(id))]
	return d, ok
}

// Filter returns descriptors matching the category and cost tier.
// Empty (or "all") values match everything.
func (c *Catalog) Filter(category, costTier string) []Descriptor {
	category = strings.ToLower(strings.TrimSpace(category))
	costTier = strings.ToLower(strings.TrimSpace(costTier))

	out := make([]Descriptor, 0, len(c.ordered))
	for _, d := range c.ordered {
		if category != "" && category != "all" && d.Category != category {
			continue
		}
		if costTier != "" && costTier != "all" && d.CostTier != costTier {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Categories returns the catalog grouped by category, preserving order.
func (c *Catalog) Categories(costTier string) map[string][]Descriptor {
	out := make(map[string][]Descriptor, 4)
	for _, category := range []string{CategoryText, CategoryImage, CategoryMusic, CategoryVideo} {
		out[category] = c.Filter(category, costTier)
	}
	return out
}

// claudeFamily lists provider ids that authenticate with Anthropic-style keys.
var claudeFamily = map[string]struct{}{
	"anthropic": {},
	"zai":       {},
}

// ClaudeCompatible reports whether the provider accepts an Anthropic-style key.
func ClaudeCompatible(id string) bool {
	_, ok := claudeFamily[strings.ToLower(strings.TrimSpace(id))]
	return ok
}
