// Package equipment describes weapons and armor and exposes the equipped loadout
// to a match.
package equipment

import (
	"errors"
	"fmt"
	"image/color"

	cfg "github.com/automoto/nightslash/config"
	"github.com/automoto/nightslash/services"
)

var ErrUnknownItem = errors.New("equipment: unknown item")

// BaseLives is the life count without armor.
const BaseLives = 3

type Weapon struct {
	ID     string
	Name   string
	Rarity string
	Trail  services.WeaponTrail
}

type Armor struct {
	ID      string
	Name    string
	Rarity  string
	HPBonus int
}

var Weapons = map[string]Weapon{}
var Armors = map[string]Armor{}

func mustHex(s string) color.RGBA {
	c, err := cfg.ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func init() {
	for _, w := range []Weapon{
		{ID: "dagger", Name: "Dagger", Rarity: "common", Trail: services.WeaponTrail{Shape: services.TrailSingle, Width: 2, Color: mustHex("#ffffff")}},
		{ID: "dual_swords", Name: "Dual Swords", Rarity: "rare", Trail: services.WeaponTrail{Shape: services.TrailDual, Width: 3, Color: mustHex("#FFD700")}},
		{ID: "flail", Name: "Flail", Rarity: "rare", Trail: services.WeaponTrail{Shape: services.TrailThick, Width: 8, Color: mustHex("#FF8C00")}},
		{ID: "greatsword", Name: "Greatsword", Rarity: "epic", Trail: services.WeaponTrail{Shape: services.TrailUltraThick, Width: 15, Color: mustHex("#FF4500")}},
		{ID: "whip", Name: "Whip", Rarity: "rare", Trail: services.WeaponTrail{Shape: services.TrailWave, Width: 5, Color: mustHex("#9370DB")}},
		{ID: "scythe", Name: "Scythe", Rarity: "legendary", Trail: services.WeaponTrail{Shape: services.TrailArc, Width: 10, Color: mustHex("#8B0000")}},
	} {
		Weapons[w.ID] = w
	}

	for _, a := range []Armor{
		{ID: "cloth", Name: "Cloth Robe", Rarity: "common", HPBonus: 1},
		{ID: "leather", Name: "Leather Armor", Rarity: "common", HPBonus: 2},
		{ID: "chain", Name: "Chain Mail", Rarity: "rare", HPBonus: 3},
		{ID: "plate", Name: "Plate Armor", Rarity: "epic", HPBonus: 5},
		{ID: "legendary", Name: "Legendary Aegis", Rarity: "legendary", HPBonus: 7},
	} {
		Armors[a.ID] = a
	}
}

// Loadout is the equipped weapon and armor. It implements services.Equipment.
type Loadout struct {
	weapon Weapon
	armor  *Armor
}

// NewLoadout resolves item ids. An empty armor id means no armor.
func NewLoadout(weaponID, armorID string) (*Loadout, error) {
	w, ok := Weapons[weaponID]
	if !ok {
		return nil, fmt.Errorf("%w: weapon %q", ErrUnknownItem, weaponID)
	}
	l := &Loadout{weapon: w}
	if armorID != "" {
		a, ok := Armors[armorID]
		if !ok {
			return nil, fmt.Errorf("%w: armor %q", ErrUnknownItem, armorID)
		}
		l.armor = &a
	}
	return l, nil
}

func (l *Loadout) Weapon() Weapon { return l.weapon }

func (l *Loadout) WeaponTrail() services.WeaponTrail { return l.weapon.Trail }

func (l *Loadout) MaxLives() int {
	if l.armor == nil {
		return BaseLives
	}
	return BaseLives + l.armor.HPBonus
}
