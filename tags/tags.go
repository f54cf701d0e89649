package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	PowerUp      = donburi.NewTag().SetName("PowerUp")
	RemotePlayer = donburi.NewTag().SetName("RemotePlayer")
)

// Resolv tags for broadphase queries
const (
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvPowerUp = "PowerUp"
)
