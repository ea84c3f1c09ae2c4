package visit

import "errors"

var (
	ErrVisitNotFound       = errors.New("visit not found")
	ErrVisitNotPlanned     = errors.New("visit is not in planned state")
	ErrVisitNotOwned       = errors.New("visit belongs to another field executive")
	ErrSlotAlreadyOccupied = errors.New("party already planned for that slot")
)
