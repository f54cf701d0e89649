package components

import (
	"github.com/automoto/pixelrun/ai"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Name      string
	Strategy  ai.Strategy // never nil; ai.None when the spawn names no behavior
	Direction float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
