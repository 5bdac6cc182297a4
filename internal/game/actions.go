package game

import (
	"fmt"

	"github.com/samdwyer/townmap/internal/entity"
)

type npcAction func(s *Session, npc *entity.NPC) string

// npcActions dispatches NPC interactions by action kind.
var npcActions = map[entity.Action]npcAction{
	entity.ActionGreet: greet,
	entity.ActionTrade: trade,
}

// greet says hello once, then the NPC has nothing more to say.
func greet(_ *Session, npc *entity.NPC) string {
	npc.Action = entity.ActionNone
	return fmt.Sprintf("%s: Hello player!", npc.Name)
}

// trade describes the NPC's shop.
func trade(s *Session, npc *entity.NPC) string {
	if npc.Building == nil {
		return fmt.Sprintf("%s has nothing to trade.", npc.Name)
	}
	room := s.town.RoomAt(s.npcPosition(npc))
	if room == nil || room.Building != npc.Building {
		return fmt.Sprintf("%s only trades inside the %s.", npc.Name, npc.Building.Name)
	}
	return fmt.Sprintf("%s offers the wares of the %s.", npc.Name, npc.Building.Name)
}
