package redis

import (
	"sort"

	"github.com/aretw0/quest/pkg/domain"
)

func sortByID(all []*domain.Adventure) {
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
}
