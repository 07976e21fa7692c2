package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Boss         = donburi.NewTag().SetName("Boss")
	Guard        = donburi.NewTag().SetName("Guard")
	Particle     = donburi.NewTag().SetName("Particle")
	FloatingText = donburi.NewTag().SetName("FloatingText")
	Heart        = donburi.NewTag().SetName("Heart")
)

// Resolv tags for swipe hit tests
const (
	ResolvEnemy = "Enemy"
	ResolvHeart = "Heart"
	ResolvProbe = "probe"
)
