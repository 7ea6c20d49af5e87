package crypto

import "github.com/MKhiriev/go-master-password/models"

var (
	identiconLeftArms    = []string{"╔", "╚", "╰", "═"}
	identiconRightArms   = []string{"╗", "╝", "╯", "═"}
	identiconBodies      = []string{"█", "░", "▒", "▓", "☺", "☻"}
	identiconAccessories = []string{
		"◈", "◎", "◐", "◑", "◒", "◓", "☀", "☁", "☂", "☃",
		"☄", "★", "☆", "☎", "☏", "⎈", "⌂", "☘", "☢", "☣",
		"☕", "⌚", "⌛", "⏰", "⚡", "⛄", "⛅", "☔", "♔", "♕",
		"♖", "♗", "♘", "♙", "♚", "♛", "♜", "♝", "♞", "♟",
		"♨", "♩", "♪", "♫", "⚐", "⚑", "⚔", "⚖", "⚙", "⚠",
		"⌘", "⏎", "✄", "✆", "✈", "✉", "✌",
	}
)

const identiconColors = int(models.ColorWhite - models.ColorRed + 1)

// identiconFromSeed maps the first five MAC bytes onto the glyph tables.
func identiconFromSeed(seed []byte) models.Identicon {
	return models.Identicon{
		LeftArm:   identiconLeftArms[int(seed[0])%len(identiconLeftArms)],
		Body:      identiconBodies[int(seed[1])%len(identiconBodies)],
		RightArm:  identiconRightArms[int(seed[2])%len(identiconRightArms)],
		Accessory: identiconAccessories[int(seed[3])%len(identiconAccessories)],
		Color:     models.IdenticonColor(int(seed[4])%identiconColors) + models.ColorRed,
	}
}
