package constant

const (
	WINDOW_TITLE          = "Go example"
	BITMAP_SIZE           = 256
	SUB_BITMAP_POS        = 64
	SUB_BITMAP_SIZE       = 64
	BACKGROUND_IMAGE      = "mysha.pcx"
	TTF_FONT              = "DroidSans.ttf"
	TTF_FONT_SIZE         = -32
	WELCOME_TEXT          = "Welcome to GoAllegro!"
	WELCOME_Y             = 32
	TTF_TEXT              = "TTF text!"
	TTF_Y                 = 96
	LINE_X1, LINE_X2      = 100, 300
	LINE_Y                = 200
	LINE_THICKNESS        = 10
	SDL_BUILTIN_FONT_SIZE = 16
)
