package services

import (
	"github.com/ersonp/catalog-seed/internal/domain/entities"
)

// PlanDemoLists derives one starter list per (user, media type) pair, users
// outermost. The title window rotates with (userIndex + typeIndex) mod 3.
func PlanDemoLists(users []entities.SeedUser, types []entities.MediaType) []entities.DemoList {
	lists := make([]entities.DemoList, 0, len(users)*len(types))
	for ui, user := range users {
		first := user.FirstName()
		for ti, mt := range types {
			lists = append(lists, entities.DemoList{
				UserEmail:   user.Email,
				Name:        first + " " + mt.Title() + " Base List",
				Description: "Demo starter list for " + mt.Words(),
				MediaType:   mt,
				Offset:      (ui + ti) % entities.DemoListOffsetCycle,
				Limit:       entities.DemoListSize,
			})
		}
	}
	return lists
}
