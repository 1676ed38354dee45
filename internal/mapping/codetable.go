// Code in this file enumerates every symbolic EV_KEY name known to the
// kernel's input-event-codes table, generated from linux/input's constant
// set. It is the compile-time {name -> code} asset spec.md section 9 calls
// for: a data table, not a feature, baked in rather than resolved at
// runtime.
package mapping

import (
	"github.com/evremapper/evremapper"
	"github.com/evremapper/evremapper/linux/input"
)

// keyCodesByName maps every symbolic KEY_*/BTN_* name to its numeric
// EV_KEY code.
var keyCodesByName = map[string]evremapper.InputCode{
	"BTN_0": input.BTN_0,
	"BTN_1": input.BTN_1,
	"BTN_2": input.BTN_2,
	"BTN_3": input.BTN_3,
	"BTN_4": input.BTN_4,
	"BTN_5": input.BTN_5,
	"BTN_6": input.BTN_6,
	"BTN_7": input.BTN_7,
	"BTN_8": input.BTN_8,
	"BTN_9": input.BTN_9,
	"BTN_A": input.BTN_A,
	"BTN_B": input.BTN_B,
	"BTN_BACK": input.BTN_BACK,
	"BTN_BASE": input.BTN_BASE,
	"BTN_BASE2": input.BTN_BASE2,
	"BTN_BASE3": input.BTN_BASE3,
	"BTN_BASE4": input.BTN_BASE4,
	"BTN_BASE5": input.BTN_BASE5,
	"BTN_BASE6": input.BTN_BASE6,
	"BTN_C": input.BTN_C,
	"BTN_DEAD": input.BTN_DEAD,
	"BTN_DIGI": input.BTN_DIGI,
	"BTN_DPAD_DOWN": input.BTN_DPAD_DOWN,
	"BTN_DPAD_LEFT": input.BTN_DPAD_LEFT,
	"BTN_DPAD_RIGHT": input.BTN_DPAD_RIGHT,
	"BTN_DPAD_UP": input.BTN_DPAD_UP,
	"BTN_EAST": input.BTN_EAST,
	"BTN_EXTRA": input.BTN_EXTRA,
	"BTN_FORWARD": input.BTN_FORWARD,
	"BTN_GAMEPAD": input.BTN_GAMEPAD,
	"BTN_GEAR_DOWN": input.BTN_GEAR_DOWN,
	"BTN_GEAR_UP": input.BTN_GEAR_UP,
	"BTN_JOYSTICK": input.BTN_JOYSTICK,
	"BTN_LEFT": input.BTN_LEFT,
	"BTN_MIDDLE": input.BTN_MIDDLE,
	"BTN_MISC": input.BTN_MISC,
	"BTN_MODE": input.BTN_MODE,
	"BTN_MOUSE": input.BTN_MOUSE,
	"BTN_NORTH": input.BTN_NORTH,
	"BTN_PINKIE": input.BTN_PINKIE,
	"BTN_RIGHT": input.BTN_RIGHT,
	"BTN_SELECT": input.BTN_SELECT,
	"BTN_SIDE": input.BTN_SIDE,
	"BTN_SOUTH": input.BTN_SOUTH,
	"BTN_START": input.BTN_START,
	"BTN_STYLUS": input.BTN_STYLUS,
	"BTN_STYLUS2": input.BTN_STYLUS2,
	"BTN_STYLUS3": input.BTN_STYLUS3,
	"BTN_TASK": input.BTN_TASK,
	"BTN_THUMB": input.BTN_THUMB,
	"BTN_THUMB2": input.BTN_THUMB2,
	"BTN_THUMBL": input.BTN_THUMBL,
	"BTN_THUMBR": input.BTN_THUMBR,
	"BTN_TL": input.BTN_TL,
	"BTN_TL2": input.BTN_TL2,
	"BTN_TOOL_AIRBRUSH": input.BTN_TOOL_AIRBRUSH,
	"BTN_TOOL_BRUSH": input.BTN_TOOL_BRUSH,
	"BTN_TOOL_DOUBLETAP": input.BTN_TOOL_DOUBLETAP,
	"BTN_TOOL_FINGER": input.BTN_TOOL_FINGER,
	"BTN_TOOL_LENS": input.BTN_TOOL_LENS,
	"BTN_TOOL_MOUSE": input.BTN_TOOL_MOUSE,
	"BTN_TOOL_PEN": input.BTN_TOOL_PEN,
	"BTN_TOOL_PENCIL": input.BTN_TOOL_PENCIL,
	"BTN_TOOL_QUADTAP": input.BTN_TOOL_QUADTAP,
	"BTN_TOOL_QUINTTAP": input.BTN_TOOL_QUINTTAP,
	"BTN_TOOL_RUBBER": input.BTN_TOOL_RUBBER,
	"BTN_TOOL_TRIPLETAP": input.BTN_TOOL_TRIPLETAP,
	"BTN_TOP": input.BTN_TOP,
	"BTN_TOP2": input.BTN_TOP2,
	"BTN_TOUCH": input.BTN_TOUCH,
	"BTN_TR": input.BTN_TR,
	"BTN_TR2": input.BTN_TR2,
	"BTN_TRIGGER": input.BTN_TRIGGER,
	"BTN_TRIGGER_HAPPY": input.BTN_TRIGGER_HAPPY,
	"BTN_TRIGGER_HAPPY1": input.BTN_TRIGGER_HAPPY1,
	"BTN_TRIGGER_HAPPY10": input.BTN_TRIGGER_HAPPY10,
	"BTN_TRIGGER_HAPPY11": input.BTN_TRIGGER_HAPPY11,
	"BTN_TRIGGER_HAPPY12": input.BTN_TRIGGER_HAPPY12,
	"BTN_TRIGGER_HAPPY13": input.BTN_TRIGGER_HAPPY13,
	"BTN_TRIGGER_HAPPY14": input.BTN_TRIGGER_HAPPY14,
	"BTN_TRIGGER_HAPPY15": input.BTN_TRIGGER_HAPPY15,
	"BTN_TRIGGER_HAPPY16": input.BTN_TRIGGER_HAPPY16,
	"BTN_TRIGGER_HAPPY17": input.BTN_TRIGGER_HAPPY17,
	"BTN_TRIGGER_HAPPY18": input.BTN_TRIGGER_HAPPY18,
	"BTN_TRIGGER_HAPPY19": input.BTN_TRIGGER_HAPPY19,
	"BTN_TRIGGER_HAPPY2": input.BTN_TRIGGER_HAPPY2,
	"BTN_TRIGGER_HAPPY20": input.BTN_TRIGGER_HAPPY20,
	"BTN_TRIGGER_HAPPY21": input.BTN_TRIGGER_HAPPY21,
	"BTN_TRIGGER_HAPPY22": input.BTN_TRIGGER_HAPPY22,
	"BTN_TRIGGER_HAPPY23": input.BTN_TRIGGER_HAPPY23,
	"BTN_TRIGGER_HAPPY24": input.BTN_TRIGGER_HAPPY24,
	"BTN_TRIGGER_HAPPY25": input.BTN_TRIGGER_HAPPY25,
	"BTN_TRIGGER_HAPPY26": input.BTN_TRIGGER_HAPPY26,
	"BTN_TRIGGER_HAPPY27": input.BTN_TRIGGER_HAPPY27,
	"BTN_TRIGGER_HAPPY28": input.BTN_TRIGGER_HAPPY28,
	"BTN_TRIGGER_HAPPY29": input.BTN_TRIGGER_HAPPY29,
	"BTN_TRIGGER_HAPPY3": input.BTN_TRIGGER_HAPPY3,
	"BTN_TRIGGER_HAPPY30": input.BTN_TRIGGER_HAPPY30,
	"BTN_TRIGGER_HAPPY31": input.BTN_TRIGGER_HAPPY31,
	"BTN_TRIGGER_HAPPY32": input.BTN_TRIGGER_HAPPY32,
	"BTN_TRIGGER_HAPPY33": input.BTN_TRIGGER_HAPPY33,
	"BTN_TRIGGER_HAPPY34": input.BTN_TRIGGER_HAPPY34,
	"BTN_TRIGGER_HAPPY35": input.BTN_TRIGGER_HAPPY35,
	"BTN_TRIGGER_HAPPY36": input.BTN_TRIGGER_HAPPY36,
	"BTN_TRIGGER_HAPPY37": input.BTN_TRIGGER_HAPPY37,
	"BTN_TRIGGER_HAPPY38": input.BTN_TRIGGER_HAPPY38,
	"BTN_TRIGGER_HAPPY39": input.BTN_TRIGGER_HAPPY39,
	"BTN_TRIGGER_HAPPY4": input.BTN_TRIGGER_HAPPY4,
	"BTN_TRIGGER_HAPPY40": input.BTN_TRIGGER_HAPPY40,
	"BTN_TRIGGER_HAPPY5": input.BTN_TRIGGER_HAPPY5,
	"BTN_TRIGGER_HAPPY6": input.BTN_TRIGGER_HAPPY6,
	"BTN_TRIGGER_HAPPY7": input.BTN_TRIGGER_HAPPY7,
	"BTN_TRIGGER_HAPPY8": input.BTN_TRIGGER_HAPPY8,
	"BTN_TRIGGER_HAPPY9": input.BTN_TRIGGER_HAPPY9,
	"BTN_WEST": input.BTN_WEST,
	"BTN_WHEEL": input.BTN_WHEEL,
	"BTN_X": input.BTN_X,
	"BTN_Y": input.BTN_Y,
	"BTN_Z": input.BTN_Z,
	"KEY_0": input.KEY_0,
	"KEY_1": input.KEY_1,
	"KEY_102ND": input.KEY_102ND,
	"KEY_10CHANNELSDOWN": input.KEY_10CHANNELSDOWN,
	"KEY_10CHANNELSUP": input.KEY_10CHANNELSUP,
	"KEY_2": input.KEY_2,
	"KEY_3": input.KEY_3,
	"KEY_3D_MODE": input.KEY_3D_MODE,
	"KEY_4": input.KEY_4,
	"KEY_5": input.KEY_5,
	"KEY_6": input.KEY_6,
	"KEY_7": input.KEY_7,
	"KEY_8": input.KEY_8,
	"KEY_9": input.KEY_9,
	"KEY_A": input.KEY_A,
	"KEY_AB": input.KEY_AB,
	"KEY_ACCESSIBILITY": input.KEY_ACCESSIBILITY,
	"KEY_ADDRESSBOOK": input.KEY_ADDRESSBOOK,
	"KEY_AGAIN": input.KEY_AGAIN,
	"KEY_ALL_APPLICATIONS": input.KEY_ALL_APPLICATIONS,
	"KEY_ALS_TOGGLE": input.KEY_ALS_TOGGLE,
	"KEY_ALTERASE": input.KEY_ALTERASE,
	"KEY_ANGLE": input.KEY_ANGLE,
	"KEY_APOSTROPHE": input.KEY_APOSTROPHE,
	"KEY_APPSELECT": input.KEY_APPSELECT,
	"KEY_ARCHIVE": input.KEY_ARCHIVE,
	"KEY_ASPECT_RATIO": input.KEY_ASPECT_RATIO,
	"KEY_ASSISTANT": input.KEY_ASSISTANT,
	"KEY_ATTENDANT_OFF": input.KEY_ATTENDANT_OFF,
	"KEY_ATTENDANT_ON": input.KEY_ATTENDANT_ON,
	"KEY_ATTENDANT_TOGGLE": input.KEY_ATTENDANT_TOGGLE,
	"KEY_AUDIO": input.KEY_AUDIO,
	"KEY_AUDIO_DESC": input.KEY_AUDIO_DESC,
	"KEY_AUTOPILOT_ENGAGE_TOGGLE": input.KEY_AUTOPILOT_ENGAGE_TOGGLE,
	"KEY_AUX": input.KEY_AUX,
	"KEY_B": input.KEY_B,
	"KEY_BACK": input.KEY_BACK,
	"KEY_BACKSLASH": input.KEY_BACKSLASH,
	"KEY_BACKSPACE": input.KEY_BACKSPACE,
	"KEY_BASSBOOST": input.KEY_BASSBOOST,
	"KEY_BATTERY": input.KEY_BATTERY,
	"KEY_BLUE": input.KEY_BLUE,
	"KEY_BLUETOOTH": input.KEY_BLUETOOTH,
	"KEY_BOOKMARKS": input.KEY_BOOKMARKS,
	"KEY_BREAK": input.KEY_BREAK,
	"KEY_BRIGHTNESSDOWN": input.KEY_BRIGHTNESSDOWN,
	"KEY_BRIGHTNESSUP": input.KEY_BRIGHTNESSUP,
	"KEY_BRIGHTNESS_AUTO": input.KEY_BRIGHTNESS_AUTO,
	"KEY_BRIGHTNESS_CYCLE": input.KEY_BRIGHTNESS_CYCLE,
	"KEY_BRIGHTNESS_MAX": input.KEY_BRIGHTNESS_MAX,
	"KEY_BRIGHTNESS_MENU": input.KEY_BRIGHTNESS_MENU,
	"KEY_BRIGHTNESS_MIN": input.KEY_BRIGHTNESS_MIN,
	"KEY_BRIGHTNESS_TOGGLE": input.KEY_BRIGHTNESS_TOGGLE,
	"KEY_BRIGHTNESS_ZERO": input.KEY_BRIGHTNESS_ZERO,
	"KEY_BRL_DOT1": input.KEY_BRL_DOT1,
	"KEY_BRL_DOT10": input.KEY_BRL_DOT10,
	"KEY_BRL_DOT2": input.KEY_BRL_DOT2,
	"KEY_BRL_DOT3": input.KEY_BRL_DOT3,
	"KEY_BRL_DOT4": input.KEY_BRL_DOT4,
	"KEY_BRL_DOT5": input.KEY_BRL_DOT5,
	"KEY_BRL_DOT6": input.KEY_BRL_DOT6,
	"KEY_BRL_DOT7": input.KEY_BRL_DOT7,
	"KEY_BRL_DOT8": input.KEY_BRL_DOT8,
	"KEY_BRL_DOT9": input.KEY_BRL_DOT9,
	"KEY_BUTTONCONFIG": input.KEY_BUTTONCONFIG,
	"KEY_C": input.KEY_C,
	"KEY_CALC": input.KEY_CALC,
	"KEY_CALENDAR": input.KEY_CALENDAR,
	"KEY_CAMERA": input.KEY_CAMERA,
	"KEY_CAMERA_ACCESS_DISABLE": input.KEY_CAMERA_ACCESS_DISABLE,
	"KEY_CAMERA_ACCESS_ENABLE": input.KEY_CAMERA_ACCESS_ENABLE,
	"KEY_CAMERA_ACCESS_TOGGLE": input.KEY_CAMERA_ACCESS_TOGGLE,
	"KEY_CAMERA_DOWN": input.KEY_CAMERA_DOWN,
	"KEY_CAMERA_FOCUS": input.KEY_CAMERA_FOCUS,
	"KEY_CAMERA_LEFT": input.KEY_CAMERA_LEFT,
	"KEY_CAMERA_RIGHT": input.KEY_CAMERA_RIGHT,
	"KEY_CAMERA_UP": input.KEY_CAMERA_UP,
	"KEY_CAMERA_ZOOMIN": input.KEY_CAMERA_ZOOMIN,
	"KEY_CAMERA_ZOOMOUT": input.KEY_CAMERA_ZOOMOUT,
	"KEY_CANCEL": input.KEY_CANCEL,
	"KEY_CAPSLOCK": input.KEY_CAPSLOCK,
	"KEY_CD": input.KEY_CD,
	"KEY_CHANNEL": input.KEY_CHANNEL,
	"KEY_CHANNELDOWN": input.KEY_CHANNELDOWN,
	"KEY_CHANNELUP": input.KEY_CHANNELUP,
	"KEY_CHAT": input.KEY_CHAT,
	"KEY_CLEAR": input.KEY_CLEAR,
	"KEY_CLEARVU_SONAR": input.KEY_CLEARVU_SONAR,
	"KEY_CLOSE": input.KEY_CLOSE,
	"KEY_CLOSECD": input.KEY_CLOSECD,
	"KEY_CNT": input.KEY_CNT,
	"KEY_COFFEE": input.KEY_COFFEE,
	"KEY_COMMA": input.KEY_COMMA,
	"KEY_COMPOSE": input.KEY_COMPOSE,
	"KEY_COMPUTER": input.KEY_COMPUTER,
	"KEY_CONFIG": input.KEY_CONFIG,
	"KEY_CONNECT": input.KEY_CONNECT,
	"KEY_CONTEXT_MENU": input.KEY_CONTEXT_MENU,
	"KEY_CONTROLPANEL": input.KEY_CONTROLPANEL,
	"KEY_COPY": input.KEY_COPY,
	"KEY_CUT": input.KEY_CUT,
	"KEY_CYCLEWINDOWS": input.KEY_CYCLEWINDOWS,
	"KEY_D": input.KEY_D,
	"KEY_DASHBOARD": input.KEY_DASHBOARD,
	"KEY_DATA": input.KEY_DATA,
	"KEY_DATABASE": input.KEY_DATABASE,
	"KEY_DELETE": input.KEY_DELETE,
	"KEY_DELETEFILE": input.KEY_DELETEFILE,
	"KEY_DEL_EOL": input.KEY_DEL_EOL,
	"KEY_DEL_EOS": input.KEY_DEL_EOS,
	"KEY_DEL_LINE": input.KEY_DEL_LINE,
	"KEY_DICTATE": input.KEY_DICTATE,
	"KEY_DIGITS": input.KEY_DIGITS,
	"KEY_DIRECTION": input.KEY_DIRECTION,
	"KEY_DIRECTORY": input.KEY_DIRECTORY,
	"KEY_DISPLAYTOGGLE": input.KEY_DISPLAYTOGGLE,
	"KEY_DISPLAY_OFF": input.KEY_DISPLAY_OFF,
	"KEY_DOCUMENTS": input.KEY_DOCUMENTS,
	"KEY_DOLLAR": input.KEY_DOLLAR,
	"KEY_DOT": input.KEY_DOT,
	"KEY_DOWN": input.KEY_DOWN,
	"KEY_DO_NOT_DISTURB": input.KEY_DO_NOT_DISTURB,
	"KEY_DUAL_RANGE_RADAR": input.KEY_DUAL_RANGE_RADAR,
	"KEY_DVD": input.KEY_DVD,
	"KEY_E": input.KEY_E,
	"KEY_EDIT": input.KEY_EDIT,
	"KEY_EDITOR": input.KEY_EDITOR,
	"KEY_EJECTCD": input.KEY_EJECTCD,
	"KEY_EJECTCLOSECD": input.KEY_EJECTCLOSECD,
	"KEY_EMAIL": input.KEY_EMAIL,
	"KEY_EMOJI_PICKER": input.KEY_EMOJI_PICKER,
	"KEY_END": input.KEY_END,
	"KEY_ENTER": input.KEY_ENTER,
	"KEY_EPG": input.KEY_EPG,
	"KEY_EQUAL": input.KEY_EQUAL,
	"KEY_ESC": input.KEY_ESC,
	"KEY_EURO": input.KEY_EURO,
	"KEY_EXIT": input.KEY_EXIT,
	"KEY_F": input.KEY_F,
	"KEY_F1": input.KEY_F1,
	"KEY_F10": input.KEY_F10,
	"KEY_F11": input.KEY_F11,
	"KEY_F12": input.KEY_F12,
	"KEY_F13": input.KEY_F13,
	"KEY_F14": input.KEY_F14,
	"KEY_F15": input.KEY_F15,
	"KEY_F16": input.KEY_F16,
	"KEY_F17": input.KEY_F17,
	"KEY_F18": input.KEY_F18,
	"KEY_F19": input.KEY_F19,
	"KEY_F2": input.KEY_F2,
	"KEY_F20": input.KEY_F20,
	"KEY_F21": input.KEY_F21,
	"KEY_F22": input.KEY_F22,
	"KEY_F23": input.KEY_F23,
	"KEY_F24": input.KEY_F24,
	"KEY_F3": input.KEY_F3,
	"KEY_F4": input.KEY_F4,
	"KEY_F5": input.KEY_F5,
	"KEY_F6": input.KEY_F6,
	"KEY_F7": input.KEY_F7,
	"KEY_F8": input.KEY_F8,
	"KEY_F9": input.KEY_F9,
	"KEY_FASTFORWARD": input.KEY_FASTFORWARD,
	"KEY_FASTREVERSE": input.KEY_FASTREVERSE,
	"KEY_FAVORITES": input.KEY_FAVORITES,
	"KEY_FILE": input.KEY_FILE,
	"KEY_FINANCE": input.KEY_FINANCE,
	"KEY_FIND": input.KEY_FIND,
	"KEY_FIRST": input.KEY_FIRST,
	"KEY_FISHING_CHART": input.KEY_FISHING_CHART,
	"KEY_FN": input.KEY_FN,
	"KEY_FN_1": input.KEY_FN_1,
	"KEY_FN_2": input.KEY_FN_2,
	"KEY_FN_B": input.KEY_FN_B,
	"KEY_FN_D": input.KEY_FN_D,
	"KEY_FN_E": input.KEY_FN_E,
	"KEY_FN_ESC": input.KEY_FN_ESC,
	"KEY_FN_F": input.KEY_FN_F,
	"KEY_FN_F1": input.KEY_FN_F1,
	"KEY_FN_F10": input.KEY_FN_F10,
	"KEY_FN_F11": input.KEY_FN_F11,
	"KEY_FN_F12": input.KEY_FN_F12,
	"KEY_FN_F2": input.KEY_FN_F2,
	"KEY_FN_F3": input.KEY_FN_F3,
	"KEY_FN_F4": input.KEY_FN_F4,
	"KEY_FN_F5": input.KEY_FN_F5,
	"KEY_FN_F6": input.KEY_FN_F6,
	"KEY_FN_F7": input.KEY_FN_F7,
	"KEY_FN_F8": input.KEY_FN_F8,
	"KEY_FN_F9": input.KEY_FN_F9,
	"KEY_FN_RIGHT_SHIFT": input.KEY_FN_RIGHT_SHIFT,
	"KEY_FN_S": input.KEY_FN_S,
	"KEY_FORWARD": input.KEY_FORWARD,
	"KEY_FORWARDMAIL": input.KEY_FORWARDMAIL,
	"KEY_FRAMEBACK": input.KEY_FRAMEBACK,
	"KEY_FRAMEFORWARD": input.KEY_FRAMEFORWARD,
	"KEY_FRONT": input.KEY_FRONT,
	"KEY_FULL_SCREEN": input.KEY_FULL_SCREEN,
	"KEY_G": input.KEY_G,
	"KEY_GAMES": input.KEY_GAMES,
	"KEY_GOTO": input.KEY_GOTO,
	"KEY_GRAPHICSEDITOR": input.KEY_GRAPHICSEDITOR,
	"KEY_GRAVE": input.KEY_GRAVE,
	"KEY_GREEN": input.KEY_GREEN,
	"KEY_H": input.KEY_H,
	"KEY_HANGEUL": input.KEY_HANGEUL,
	"KEY_HANGUEL": input.KEY_HANGUEL,
	"KEY_HANGUP_PHONE": input.KEY_HANGUP_PHONE,
	"KEY_HANJA": input.KEY_HANJA,
	"KEY_HELP": input.KEY_HELP,
	"KEY_HENKAN": input.KEY_HENKAN,
	"KEY_HIRAGANA": input.KEY_HIRAGANA,
	"KEY_HOME": input.KEY_HOME,
	"KEY_HOMEPAGE": input.KEY_HOMEPAGE,
	"KEY_HP": input.KEY_HP,
	"KEY_I": input.KEY_I,
	"KEY_IMAGES": input.KEY_IMAGES,
	"KEY_INFO": input.KEY_INFO,
	"KEY_INSERT": input.KEY_INSERT,
	"KEY_INS_LINE": input.KEY_INS_LINE,
	"KEY_ISO": input.KEY_ISO,
	"KEY_J": input.KEY_J,
	"KEY_JOURNAL": input.KEY_JOURNAL,
	"KEY_K": input.KEY_K,
	"KEY_KATAKANA": input.KEY_KATAKANA,
	"KEY_KATAKANAHIRAGANA": input.KEY_KATAKANAHIRAGANA,
	"KEY_KBDILLUMDOWN": input.KEY_KBDILLUMDOWN,
	"KEY_KBDILLUMTOGGLE": input.KEY_KBDILLUMTOGGLE,
	"KEY_KBDILLUMUP": input.KEY_KBDILLUMUP,
	"KEY_KBDINPUTASSIST_ACCEPT": input.KEY_KBDINPUTASSIST_ACCEPT,
	"KEY_KBDINPUTASSIST_CANCEL": input.KEY_KBDINPUTASSIST_CANCEL,
	"KEY_KBDINPUTASSIST_NEXT": input.KEY_KBDINPUTASSIST_NEXT,
	"KEY_KBDINPUTASSIST_NEXTGROUP": input.KEY_KBDINPUTASSIST_NEXTGROUP,
	"KEY_KBDINPUTASSIST_PREV": input.KEY_KBDINPUTASSIST_PREV,
	"KEY_KBDINPUTASSIST_PREVGROUP": input.KEY_KBDINPUTASSIST_PREVGROUP,
	"KEY_KBD_LAYOUT_NEXT": input.KEY_KBD_LAYOUT_NEXT,
	"KEY_KBD_LCD_MENU1": input.KEY_KBD_LCD_MENU1,
	"KEY_KBD_LCD_MENU2": input.KEY_KBD_LCD_MENU2,
	"KEY_KBD_LCD_MENU3": input.KEY_KBD_LCD_MENU3,
	"KEY_KBD_LCD_MENU4": input.KEY_KBD_LCD_MENU4,
	"KEY_KBD_LCD_MENU5": input.KEY_KBD_LCD_MENU5,
	"KEY_KEYBOARD": input.KEY_KEYBOARD,
	"KEY_KP0": input.KEY_KP0,
	"KEY_KP1": input.KEY_KP1,
	"KEY_KP2": input.KEY_KP2,
	"KEY_KP3": input.KEY_KP3,
	"KEY_KP4": input.KEY_KP4,
	"KEY_KP5": input.KEY_KP5,
	"KEY_KP6": input.KEY_KP6,
	"KEY_KP7": input.KEY_KP7,
	"KEY_KP8": input.KEY_KP8,
	"KEY_KP9": input.KEY_KP9,
	"KEY_KPASTERISK": input.KEY_KPASTERISK,
	"KEY_KPCOMMA": input.KEY_KPCOMMA,
	"KEY_KPDOT": input.KEY_KPDOT,
	"KEY_KPENTER": input.KEY_KPENTER,
	"KEY_KPEQUAL": input.KEY_KPEQUAL,
	"KEY_KPJPCOMMA": input.KEY_KPJPCOMMA,
	"KEY_KPLEFTPAREN": input.KEY_KPLEFTPAREN,
	"KEY_KPMINUS": input.KEY_KPMINUS,
	"KEY_KPPLUS": input.KEY_KPPLUS,
	"KEY_KPPLUSMINUS": input.KEY_KPPLUSMINUS,
	"KEY_KPRIGHTPAREN": input.KEY_KPRIGHTPAREN,
	"KEY_KPSLASH": input.KEY_KPSLASH,
	"KEY_L": input.KEY_L,
	"KEY_LANGUAGE": input.KEY_LANGUAGE,
	"KEY_LAST": input.KEY_LAST,
	"KEY_LEFT": input.KEY_LEFT,
	"KEY_LEFTALT": input.KEY_LEFTALT,
	"KEY_LEFTBRACE": input.KEY_LEFTBRACE,
	"KEY_LEFTCTRL": input.KEY_LEFTCTRL,
	"KEY_LEFTMETA": input.KEY_LEFTMETA,
	"KEY_LEFTSHIFT": input.KEY_LEFTSHIFT,
	"KEY_LEFT_DOWN": input.KEY_LEFT_DOWN,
	"KEY_LEFT_UP": input.KEY_LEFT_UP,
	"KEY_LIGHTS_TOGGLE": input.KEY_LIGHTS_TOGGLE,
	"KEY_LINEFEED": input.KEY_LINEFEED,
	"KEY_LINK_PHONE": input.KEY_LINK_PHONE,
	"KEY_LIST": input.KEY_LIST,
	"KEY_LOGOFF": input.KEY_LOGOFF,
	"KEY_M": input.KEY_M,
	"KEY_MACRO": input.KEY_MACRO,
	"KEY_MACRO1": input.KEY_MACRO1,
	"KEY_MACRO10": input.KEY_MACRO10,
	"KEY_MACRO11": input.KEY_MACRO11,
	"KEY_MACRO12": input.KEY_MACRO12,
	"KEY_MACRO13": input.KEY_MACRO13,
	"KEY_MACRO14": input.KEY_MACRO14,
	"KEY_MACRO15": input.KEY_MACRO15,
	"KEY_MACRO16": input.KEY_MACRO16,
	"KEY_MACRO17": input.KEY_MACRO17,
	"KEY_MACRO18": input.KEY_MACRO18,
	"KEY_MACRO19": input.KEY_MACRO19,
	"KEY_MACRO2": input.KEY_MACRO2,
	"KEY_MACRO20": input.KEY_MACRO20,
	"KEY_MACRO21": input.KEY_MACRO21,
	"KEY_MACRO22": input.KEY_MACRO22,
	"KEY_MACRO23": input.KEY_MACRO23,
	"KEY_MACRO24": input.KEY_MACRO24,
	"KEY_MACRO25": input.KEY_MACRO25,
	"KEY_MACRO26": input.KEY_MACRO26,
	"KEY_MACRO27": input.KEY_MACRO27,
	"KEY_MACRO28": input.KEY_MACRO28,
	"KEY_MACRO29": input.KEY_MACRO29,
	"KEY_MACRO3": input.KEY_MACRO3,
	"KEY_MACRO30": input.KEY_MACRO30,
	"KEY_MACRO4": input.KEY_MACRO4,
	"KEY_MACRO5": input.KEY_MACRO5,
	"KEY_MACRO6": input.KEY_MACRO6,
	"KEY_MACRO7": input.KEY_MACRO7,
	"KEY_MACRO8": input.KEY_MACRO8,
	"KEY_MACRO9": input.KEY_MACRO9,
	"KEY_MACRO_PRESET1": input.KEY_MACRO_PRESET1,
	"KEY_MACRO_PRESET2": input.KEY_MACRO_PRESET2,
	"KEY_MACRO_PRESET3": input.KEY_MACRO_PRESET3,
	"KEY_MACRO_PRESET_CYCLE": input.KEY_MACRO_PRESET_CYCLE,
	"KEY_MACRO_RECORD_START": input.KEY_MACRO_RECORD_START,
	"KEY_MACRO_RECORD_STOP": input.KEY_MACRO_RECORD_STOP,
	"KEY_MAIL": input.KEY_MAIL,
	"KEY_MARK_WAYPOINT": input.KEY_MARK_WAYPOINT,
	"KEY_MAX": input.KEY_MAX,
	"KEY_MEDIA": input.KEY_MEDIA,
	"KEY_MEDIA_REPEAT": input.KEY_MEDIA_REPEAT,
	"KEY_MEDIA_TOP_MENU": input.KEY_MEDIA_TOP_MENU,
	"KEY_MEMO": input.KEY_MEMO,
	"KEY_MENU": input.KEY_MENU,
	"KEY_MESSENGER": input.KEY_MESSENGER,
	"KEY_MHP": input.KEY_MHP,
	"KEY_MICMUTE": input.KEY_MICMUTE,
	"KEY_MINUS": input.KEY_MINUS,
	"KEY_MIN_INTERESTING": input.KEY_MIN_INTERESTING,
	"KEY_MODE": input.KEY_MODE,
	"KEY_MOVE": input.KEY_MOVE,
	"KEY_MP3": input.KEY_MP3,
	"KEY_MSDOS": input.KEY_MSDOS,
	"KEY_MUHENKAN": input.KEY_MUHENKAN,
	"KEY_MUTE": input.KEY_MUTE,
	"KEY_N": input.KEY_N,
	"KEY_NAV_CHART": input.KEY_NAV_CHART,
	"KEY_NAV_INFO": input.KEY_NAV_INFO,
	"KEY_NEW": input.KEY_NEW,
	"KEY_NEWS": input.KEY_NEWS,
	"KEY_NEXT": input.KEY_NEXT,
	"KEY_NEXTSONG": input.KEY_NEXTSONG,
	"KEY_NEXT_ELEMENT": input.KEY_NEXT_ELEMENT,
	"KEY_NEXT_FAVORITE": input.KEY_NEXT_FAVORITE,
	"KEY_NOTIFICATION_CENTER": input.KEY_NOTIFICATION_CENTER,
	"KEY_NUMERIC_0": input.KEY_NUMERIC_0,
	"KEY_NUMERIC_1": input.KEY_NUMERIC_1,
	"KEY_NUMERIC_11": input.KEY_NUMERIC_11,
	"KEY_NUMERIC_12": input.KEY_NUMERIC_12,
	"KEY_NUMERIC_2": input.KEY_NUMERIC_2,
	"KEY_NUMERIC_3": input.KEY_NUMERIC_3,
	"KEY_NUMERIC_4": input.KEY_NUMERIC_4,
	"KEY_NUMERIC_5": input.KEY_NUMERIC_5,
	"KEY_NUMERIC_6": input.KEY_NUMERIC_6,
	"KEY_NUMERIC_7": input.KEY_NUMERIC_7,
	"KEY_NUMERIC_8": input.KEY_NUMERIC_8,
	"KEY_NUMERIC_9": input.KEY_NUMERIC_9,
	"KEY_NUMERIC_A": input.KEY_NUMERIC_A,
	"KEY_NUMERIC_B": input.KEY_NUMERIC_B,
	"KEY_NUMERIC_C": input.KEY_NUMERIC_C,
	"KEY_NUMERIC_D": input.KEY_NUMERIC_D,
	"KEY_NUMERIC_POUND": input.KEY_NUMERIC_POUND,
	"KEY_NUMERIC_STAR": input.KEY_NUMERIC_STAR,
	"KEY_NUMLOCK": input.KEY_NUMLOCK,
	"KEY_O": input.KEY_O,
	"KEY_OK": input.KEY_OK,
	"KEY_ONSCREEN_KEYBOARD": input.KEY_ONSCREEN_KEYBOARD,
	"KEY_OPEN": input.KEY_OPEN,
	"KEY_OPTION": input.KEY_OPTION,
	"KEY_P": input.KEY_P,
	"KEY_PAGEDOWN": input.KEY_PAGEDOWN,
	"KEY_PAGEUP": input.KEY_PAGEUP,
	"KEY_PASTE": input.KEY_PASTE,
	"KEY_PAUSE": input.KEY_PAUSE,
	"KEY_PAUSECD": input.KEY_PAUSECD,
	"KEY_PAUSE_RECORD": input.KEY_PAUSE_RECORD,
	"KEY_PC": input.KEY_PC,
	"KEY_PHONE": input.KEY_PHONE,
	"KEY_PICKUP_PHONE": input.KEY_PICKUP_PHONE,
	"KEY_PLAY": input.KEY_PLAY,
	"KEY_PLAYCD": input.KEY_PLAYCD,
	"KEY_PLAYER": input.KEY_PLAYER,
	"KEY_PLAYPAUSE": input.KEY_PLAYPAUSE,
	"KEY_POWER": input.KEY_POWER,
	"KEY_POWER2": input.KEY_POWER2,
	"KEY_PRESENTATION": input.KEY_PRESENTATION,
	"KEY_PREVIOUS": input.KEY_PREVIOUS,
	"KEY_PREVIOUSSONG": input.KEY_PREVIOUSSONG,
	"KEY_PREVIOUS_ELEMENT": input.KEY_PREVIOUS_ELEMENT,
	"KEY_PRINT": input.KEY_PRINT,
	"KEY_PRIVACY_SCREEN_TOGGLE": input.KEY_PRIVACY_SCREEN_TOGGLE,
	"KEY_PROG1": input.KEY_PROG1,
	"KEY_PROG2": input.KEY_PROG2,
	"KEY_PROG3": input.KEY_PROG3,
	"KEY_PROG4": input.KEY_PROG4,
	"KEY_PROGRAM": input.KEY_PROGRAM,
	"KEY_PROPS": input.KEY_PROPS,
	"KEY_PVR": input.KEY_PVR,
	"KEY_Q": input.KEY_Q,
	"KEY_QUESTION": input.KEY_QUESTION,
	"KEY_R": input.KEY_R,
	"KEY_RADAR_OVERLAY": input.KEY_RADAR_OVERLAY,
	"KEY_RADIO": input.KEY_RADIO,
	"KEY_RECORD": input.KEY_RECORD,
	"KEY_RED": input.KEY_RED,
	"KEY_REDO": input.KEY_REDO,
	"KEY_REFRESH": input.KEY_REFRESH,
	"KEY_REFRESH_RATE_TOGGLE": input.KEY_REFRESH_RATE_TOGGLE,
	"KEY_REPLY": input.KEY_REPLY,
	"KEY_RESERVED": input.KEY_RESERVED,
	"KEY_RESTART": input.KEY_RESTART,
	"KEY_REWIND": input.KEY_REWIND,
	"KEY_RFKILL": input.KEY_RFKILL,
	"KEY_RIGHT": input.KEY_RIGHT,
	"KEY_RIGHTALT": input.KEY_RIGHTALT,
	"KEY_RIGHTBRACE": input.KEY_RIGHTBRACE,
	"KEY_RIGHTCTRL": input.KEY_RIGHTCTRL,
	"KEY_RIGHTMETA": input.KEY_RIGHTMETA,
	"KEY_RIGHTSHIFT": input.KEY_RIGHTSHIFT,
	"KEY_RIGHT_DOWN": input.KEY_RIGHT_DOWN,
	"KEY_RIGHT_UP": input.KEY_RIGHT_UP,
	"KEY_RO": input.KEY_RO,
	"KEY_ROOT_MENU": input.KEY_ROOT_MENU,
	"KEY_ROTATE_DISPLAY": input.KEY_ROTATE_DISPLAY,
	"KEY_ROTATE_LOCK_TOGGLE": input.KEY_ROTATE_LOCK_TOGGLE,
	"KEY_S": input.KEY_S,
	"KEY_SAT": input.KEY_SAT,
	"KEY_SAT2": input.KEY_SAT2,
	"KEY_SAVE": input.KEY_SAVE,
	"KEY_SCALE": input.KEY_SCALE,
	"KEY_SCREEN": input.KEY_SCREEN,
	"KEY_SCREENLOCK": input.KEY_SCREENLOCK,
	"KEY_SCREENSAVER": input.KEY_SCREENSAVER,
	"KEY_SCROLLDOWN": input.KEY_SCROLLDOWN,
	"KEY_SCROLLLOCK": input.KEY_SCROLLLOCK,
	"KEY_SCROLLUP": input.KEY_SCROLLUP,
	"KEY_SEARCH": input.KEY_SEARCH,
	"KEY_SELECT": input.KEY_SELECT,
	"KEY_SELECTIVE_SCREENSHOT": input.KEY_SELECTIVE_SCREENSHOT,
	"KEY_SEMICOLON": input.KEY_SEMICOLON,
	"KEY_SEND": input.KEY_SEND,
	"KEY_SENDFILE": input.KEY_SENDFILE,
	"KEY_SETUP": input.KEY_SETUP,
	"KEY_SHOP": input.KEY_SHOP,
	"KEY_SHUFFLE": input.KEY_SHUFFLE,
	"KEY_SIDEVU_SONAR": input.KEY_SIDEVU_SONAR,
	"KEY_SINGLE_RANGE_RADAR": input.KEY_SINGLE_RANGE_RADAR,
	"KEY_SLASH": input.KEY_SLASH,
	"KEY_SLEEP": input.KEY_SLEEP,
	"KEY_SLOW": input.KEY_SLOW,
	"KEY_SLOWREVERSE": input.KEY_SLOWREVERSE,
	"KEY_SOS": input.KEY_SOS,
	"KEY_SOUND": input.KEY_SOUND,
	"KEY_SPACE": input.KEY_SPACE,
	"KEY_SPELLCHECK": input.KEY_SPELLCHECK,
	"KEY_SPORT": input.KEY_SPORT,
	"KEY_SPREADSHEET": input.KEY_SPREADSHEET,
	"KEY_STOP": input.KEY_STOP,
	"KEY_STOPCD": input.KEY_STOPCD,
	"KEY_STOP_RECORD": input.KEY_STOP_RECORD,
	"KEY_SUBTITLE": input.KEY_SUBTITLE,
	"KEY_SUSPEND": input.KEY_SUSPEND,
	"KEY_SWITCHVIDEOMODE": input.KEY_SWITCHVIDEOMODE,
	"KEY_SYSRQ": input.KEY_SYSRQ,
	"KEY_T": input.KEY_T,
	"KEY_TAB": input.KEY_TAB,
	"KEY_TAPE": input.KEY_TAPE,
	"KEY_TASKMANAGER": input.KEY_TASKMANAGER,
	"KEY_TEEN": input.KEY_TEEN,
	"KEY_TEXT": input.KEY_TEXT,
	"KEY_TIME": input.KEY_TIME,
	"KEY_TITLE": input.KEY_TITLE,
	"KEY_TOUCHPAD_OFF": input.KEY_TOUCHPAD_OFF,
	"KEY_TOUCHPAD_ON": input.KEY_TOUCHPAD_ON,
	"KEY_TOUCHPAD_TOGGLE": input.KEY_TOUCHPAD_TOGGLE,
	"KEY_TRADITIONAL_SONAR": input.KEY_TRADITIONAL_SONAR,
	"KEY_TUNER": input.KEY_TUNER,
	"KEY_TV": input.KEY_TV,
	"KEY_TV2": input.KEY_TV2,
	"KEY_TWEN": input.KEY_TWEN,
	"KEY_U": input.KEY_U,
	"KEY_UNDO": input.KEY_UNDO,
	"KEY_UNKNOWN": input.KEY_UNKNOWN,
	"KEY_UNMUTE": input.KEY_UNMUTE,
	"KEY_UP": input.KEY_UP,
	"KEY_UWB": input.KEY_UWB,
	"KEY_V": input.KEY_V,
	"KEY_VCR": input.KEY_VCR,
	"KEY_VCR2": input.KEY_VCR2,
	"KEY_VENDOR": input.KEY_VENDOR,
	"KEY_VIDEO": input.KEY_VIDEO,
	"KEY_VIDEOPHONE": input.KEY_VIDEOPHONE,
	"KEY_VIDEO_NEXT": input.KEY_VIDEO_NEXT,
	"KEY_VIDEO_PREV": input.KEY_VIDEO_PREV,
	"KEY_VOD": input.KEY_VOD,
	"KEY_VOICECOMMAND": input.KEY_VOICECOMMAND,
	"KEY_VOICEMAIL": input.KEY_VOICEMAIL,
	"KEY_VOLUMEDOWN": input.KEY_VOLUMEDOWN,
	"KEY_VOLUMEUP": input.KEY_VOLUMEUP,
	"KEY_W": input.KEY_W,
	"KEY_WAKEUP": input.KEY_WAKEUP,
	"KEY_WIMAX": input.KEY_WIMAX,
	"KEY_WLAN": input.KEY_WLAN,
	"KEY_WORDPROCESSOR": input.KEY_WORDPROCESSOR,
	"KEY_WPS_BUTTON": input.KEY_WPS_BUTTON,
	"KEY_WWAN": input.KEY_WWAN,
	"KEY_WWW": input.KEY_WWW,
	"KEY_X": input.KEY_X,
	"KEY_XFER": input.KEY_XFER,
	"KEY_Y": input.KEY_Y,
	"KEY_YELLOW": input.KEY_YELLOW,
	"KEY_YEN": input.KEY_YEN,
	"KEY_Z": input.KEY_Z,
	"KEY_ZENKAKUHANKAKU": input.KEY_ZENKAKUHANKAKU,
	"KEY_ZOOM": input.KEY_ZOOM,
	"KEY_ZOOMIN": input.KEY_ZOOMIN,
	"KEY_ZOOMOUT": input.KEY_ZOOMOUT,
	"KEY_ZOOMRESET": input.KEY_ZOOMRESET,
}
