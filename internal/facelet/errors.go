package facelet

import "errors"

// ErrMalformedFacelets is returned when a sticker layout does not
// correspond to any valid physical cube: a corner or edge triple/pair
// of colours that matches no entry in the cornerColour/edgeColour
// tables. The reference implementation this package is modelled on
// leaves such a position silently pointing at the identity piece;
// reporting it explicitly here lets callers reject a bad scan instead
// of solving a cube that was never actually scanned.
var ErrMalformedFacelets = errors.New("facelet: sticker layout does not correspond to a valid cube")

// ErrInvalidColour is returned by Parse when a sticker character is
// not one of the six recognised colour letters.
var ErrInvalidColour = errors.New("facelet: invalid sticker colour")

// ErrBadLayout is returned by Parse when the input does not consist of
// exactly 9 lines of at least the width each face slice requires.
var ErrBadLayout = errors.New("facelet: input is not a 9-line sticker layout")
