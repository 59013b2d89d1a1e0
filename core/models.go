package core

// Record is the projection of one catalog entry fetched from the
// external API. Height and weight are already converted to metres and
// kilograms at the adapter boundary.
type Record struct {
	ID        int
	Name      string
	SpriteURL string
	Types     []string
	HeightM   float64
	WeightKG  float64
	Abilities []string
}
