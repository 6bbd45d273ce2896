package models

// Slot represents one bookable parking space from the fixed registry.
type Slot struct {
	SlotID int    `bson:"slot_id" json:"slotId"`
	Name   string `bson:"name" json:"name"`
}
