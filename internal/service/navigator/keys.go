package navigator

// Key codes as delivered by the reading surface. These are raw keydown
// codes, not characters.
const (
	KeyEnter  = 13
	KeyEscape = 27
	KeySpace  = 32
	KeyEnd    = 35
	KeyHome   = 36
	KeyLeft   = 37
	KeyUp     = 38
	KeyRight  = 39
	KeyDown   = 40

	Key1 = 49
	Key2 = 50
	Key3 = 51
	Key4 = 52
	Key5 = 53

	KeyA = 65
	KeyE = 69
	KeyG = 71
	KeyI = 73
	KeyP = 80
	KeyT = 84
	KeyW = 87
)
