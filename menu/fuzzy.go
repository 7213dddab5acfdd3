package menu

// ConsumeOrSelect resolves an inventory activation. Whether an item is a
// consumable or a tool cannot be known without trying to use it, so the delay
// policy is checked on both sides of the attempt.
func ConsumeOrSelect(inv Inventory, slot int, delay DelayedActions, action ItemAction) ActivationResult {
	if delay == DelayAll {
		return ResultDelayed
	}
	slots := inv.Slots()
	if slot < 0 || slot >= len(slots) || slots[slot] == nil {
		// Slot was emptied since the menu was built; nothing left to do.
		return ResultUsed
	}
	if action == ActionUse && inv.TryConsume(slot) {
		return ResultUsed
	}
	if delay == DelayToolSwitch {
		return ResultDelayed
	}
	inv.SelectSlot(slot)
	return ResultSelected
}
