package tags

import "github.com/yohamta/donburi"

var (
	Ship = donburi.NewTag().SetName("Ship")
	Shot = donburi.NewTag().SetName("Shot")
	Star = donburi.NewTag().SetName("Star")
)
