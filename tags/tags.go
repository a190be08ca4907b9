package tags

import "github.com/yohamta/donburi"

var (
	Show  = donburi.NewTag().SetName("Show")
	Toast = donburi.NewTag().SetName("Toast")
)
