package entities

import "fmt"

// Import is an opcode of the library→host space, the first argument of every
// syscall. Values are fixed by the engine: entries 0..87 are dense and the
// math and memory helpers start at 100.
type Import int32

// Library→host opcodes.
const (
	ImportError Import = iota
	ImportPrint
	ImportMilliseconds
	ImportCvarSet
	ImportCvarVariableValue
	ImportCvarVariableStringBuffer
	ImportCvarSetValue
	ImportCvarReset
	ImportCvarCreate
	ImportCvarInfoStringBuffer
	ImportArgc
	ImportArgv
	ImportCmdExecuteText
	ImportFSFOpenFile
	ImportFSRead
	ImportFSWrite
	ImportFSFCloseFile
	ImportFSGetFileList
	ImportRRegisterModel
	ImportRRegisterSkin
	ImportRRegisterShaderNoMip
	ImportRClearScene
	ImportRAddRefEntityToScene
	ImportRAddPolyToScene
	ImportRAddLightToScene
	ImportRRenderScene
	ImportRSetColor
	ImportRDrawStretchPic
	ImportUpdateScreen
	ImportCMLerpTag
	ImportCMLoadModel
	ImportSRegisterSound
	ImportSStartLocalSound
	ImportKeyKeynumToStringBuf
	ImportKeyGetBindingBuf
	ImportKeySetBinding
	ImportKeyIsDown
	ImportKeyGetOverstrikeMode
	ImportKeySetOverstrikeMode
	ImportKeyClearStates
	ImportKeyGetCatcher
	ImportKeySetCatcher
	ImportGetClipboardData
	ImportGetGLConfig
	ImportGetClientState
	ImportGetConfigString
	ImportLANGetPingQueueCount
	ImportLANClearPing
	ImportLANGetPing
	ImportLANGetPingInfo
	ImportCvarRegister
	ImportCvarUpdate
	ImportMemoryRemaining
	ImportGetCDKey
	ImportSetCDKey
	ImportRRegisterFont
	ImportRModelBounds
	ImportPCAddGlobalDefine
	ImportPCLoadSource
	ImportPCFreeSource
	ImportPCReadToken
	ImportPCSourceFileAndLine
	ImportSStopBackgroundTrack
	ImportSStartBackgroundTrack
	ImportRealTime
	ImportLANGetServerCount
	ImportLANGetServerAddressString
	ImportLANGetServerInfo
	ImportLANMarkServerVisible
	ImportLANUpdateVisiblePings
	ImportLANResetPings
	ImportLANLoadCachedServers
	ImportLANSaveCachedServers
	ImportLANAddServer
	ImportLANRemoveServer
	ImportCINPlayCinematic
	ImportCINStopCinematic
	ImportCINRunCinematic
	ImportCINDrawCinematic
	ImportCINSetExtents
	ImportRRemapShader
	ImportVerifyCDKey
	ImportLANServerStatus
	ImportLANGetServerPing
	ImportLANServerIsVisible
	ImportLANCompareServers
	ImportFSSeek
	ImportSetPBClStatus

	importDenseCount
)

// Math and memory helpers, serviced natively by the engine.
const (
	ImportMemset Import = 100 + iota
	ImportMemcpy
	ImportStrncpy
	ImportSin
	ImportCos
	ImportAtan2
	ImportSqrt
	ImportFloor
	ImportCeil

	importMathEnd
)

var importNames = map[Import]string{
	ImportError:                     "UI_ERROR",
	ImportPrint:                     "UI_PRINT",
	ImportMilliseconds:              "UI_MILLISECONDS",
	ImportCvarSet:                   "UI_CVAR_SET",
	ImportCvarVariableValue:         "UI_CVAR_VARIABLEVALUE",
	ImportCvarVariableStringBuffer:  "UI_CVAR_VARIABLESTRINGBUFFER",
	ImportCvarSetValue:              "UI_CVAR_SETVALUE",
	ImportCvarReset:                 "UI_CVAR_RESET",
	ImportCvarCreate:                "UI_CVAR_CREATE",
	ImportCvarInfoStringBuffer:      "UI_CVAR_INFOSTRINGBUFFER",
	ImportArgc:                      "UI_ARGC",
	ImportArgv:                      "UI_ARGV",
	ImportCmdExecuteText:            "UI_CMD_EXECUTETEXT",
	ImportFSFOpenFile:               "UI_FS_FOPENFILE",
	ImportFSRead:                    "UI_FS_READ",
	ImportFSWrite:                   "UI_FS_WRITE",
	ImportFSFCloseFile:              "UI_FS_FCLOSEFILE",
	ImportFSGetFileList:             "UI_FS_GETFILELIST",
	ImportRRegisterModel:            "UI_R_REGISTERMODEL",
	ImportRRegisterSkin:             "UI_R_REGISTERSKIN",
	ImportRRegisterShaderNoMip:      "UI_R_REGISTERSHADERNOMIP",
	ImportRClearScene:               "UI_R_CLEARSCENE",
	ImportRAddRefEntityToScene:      "UI_R_ADDREFENTITYTOSCENE",
	ImportRAddPolyToScene:           "UI_R_ADDPOLYTOSCENE",
	ImportRAddLightToScene:          "UI_R_ADDLIGHTTOSCENE",
	ImportRRenderScene:              "UI_R_RENDERSCENE",
	ImportRSetColor:                 "UI_R_SETCOLOR",
	ImportRDrawStretchPic:           "UI_R_DRAWSTRETCHPIC",
	ImportUpdateScreen:              "UI_UPDATESCREEN",
	ImportCMLerpTag:                 "UI_CM_LERPTAG",
	ImportCMLoadModel:               "UI_CM_LOADMODEL",
	ImportSRegisterSound:            "UI_S_REGISTERSOUND",
	ImportSStartLocalSound:          "UI_S_STARTLOCALSOUND",
	ImportKeyKeynumToStringBuf:      "UI_KEY_KEYNUMTOSTRINGBUF",
	ImportKeyGetBindingBuf:          "UI_KEY_GETBINDINGBUF",
	ImportKeySetBinding:             "UI_KEY_SETBINDING",
	ImportKeyIsDown:                 "UI_KEY_ISDOWN",
	ImportKeyGetOverstrikeMode:      "UI_KEY_GETOVERSTRIKEMODE",
	ImportKeySetOverstrikeMode:      "UI_KEY_SETOVERSTRIKEMODE",
	ImportKeyClearStates:            "UI_KEY_CLEARSTATES",
	ImportKeyGetCatcher:             "UI_KEY_GETCATCHER",
	ImportKeySetCatcher:             "UI_KEY_SETCATCHER",
	ImportGetClipboardData:          "UI_GETCLIPBOARDDATA",
	ImportGetGLConfig:               "UI_GETGLCONFIG",
	ImportGetClientState:            "UI_GETCLIENTSTATE",
	ImportGetConfigString:           "UI_GETCONFIGSTRING",
	ImportLANGetPingQueueCount:      "UI_LAN_GETPINGQUEUECOUNT",
	ImportLANClearPing:              "UI_LAN_CLEARPING",
	ImportLANGetPing:                "UI_LAN_GETPING",
	ImportLANGetPingInfo:            "UI_LAN_GETPINGINFO",
	ImportCvarRegister:              "UI_CVAR_REGISTER",
	ImportCvarUpdate:                "UI_CVAR_UPDATE",
	ImportMemoryRemaining:           "UI_MEMORY_REMAINING",
	ImportGetCDKey:                  "UI_GET_CDKEY",
	ImportSetCDKey:                  "UI_SET_CDKEY",
	ImportRRegisterFont:             "UI_R_REGISTERFONT",
	ImportRModelBounds:              "UI_R_MODELBOUNDS",
	ImportPCAddGlobalDefine:         "UI_PC_ADD_GLOBAL_DEFINE",
	ImportPCLoadSource:              "UI_PC_LOAD_SOURCE",
	ImportPCFreeSource:              "UI_PC_FREE_SOURCE",
	ImportPCReadToken:               "UI_PC_READ_TOKEN",
	ImportPCSourceFileAndLine:       "UI_PC_SOURCE_FILE_AND_LINE",
	ImportSStopBackgroundTrack:      "UI_S_STOPBACKGROUNDTRACK",
	ImportSStartBackgroundTrack:     "UI_S_STARTBACKGROUNDTRACK",
	ImportRealTime:                  "UI_REAL_TIME",
	ImportLANGetServerCount:         "UI_LAN_GETSERVERCOUNT",
	ImportLANGetServerAddressString: "UI_LAN_GETSERVERADDRESSSTRING",
	ImportLANGetServerInfo:          "UI_LAN_GETSERVERINFO",
	ImportLANMarkServerVisible:      "UI_LAN_MARKSERVERVISIBLE",
	ImportLANUpdateVisiblePings:     "UI_LAN_UPDATEVISIBLEPINGS",
	ImportLANResetPings:             "UI_LAN_RESETPINGS",
	ImportLANLoadCachedServers:      "UI_LAN_LOADCACHEDSERVERS",
	ImportLANSaveCachedServers:      "UI_LAN_SAVECACHEDSERVERS",
	ImportLANAddServer:              "UI_LAN_ADDSERVER",
	ImportLANRemoveServer:           "UI_LAN_REMOVESERVER",
	ImportCINPlayCinematic:          "UI_CIN_PLAYCINEMATIC",
	ImportCINStopCinematic:          "UI_CIN_STOPCINEMATIC",
	ImportCINRunCinematic:           "UI_CIN_RUNCINEMATIC",
	ImportCINDrawCinematic:          "UI_CIN_DRAWCINEMATIC",
	ImportCINSetExtents:             "UI_CIN_SETEXTENTS",
	ImportRRemapShader:              "UI_R_REMAP_SHADER",
	ImportVerifyCDKey:               "UI_VERIFY_CDKEY",
	ImportLANServerStatus:           "UI_LAN_SERVERSTATUS",
	ImportLANGetServerPing:          "UI_LAN_GETSERVERPING",
	ImportLANServerIsVisible:        "UI_LAN_SERVERISVISIBLE",
	ImportLANCompareServers:         "UI_LAN_COMPARESERVERS",
	ImportFSSeek:                    "UI_FS_SEEK",
	ImportSetPBClStatus:             "UI_SET_PBCLSTATUS",
	ImportMemset:                    "UI_MEMSET",
	ImportMemcpy:                    "UI_MEMCPY",
	ImportStrncpy:                   "UI_STRNCPY",
	ImportSin:                       "UI_SIN",
	ImportCos:                       "UI_COS",
	ImportAtan2:                     "UI_ATAN2",
	ImportSqrt:                      "UI_SQRT",
	ImportFloor:                     "UI_FLOOR",
	ImportCeil:                      "UI_CEIL",
}

// Valid reports whether i is a member of the library→host space.
func (i Import) Valid() bool {
	return (i >= 0 && i < importDenseCount) || (i >= ImportMemset && i < importMathEnd)
}

func (i Import) String() string {
	if name, ok := importNames[i]; ok {
		return name
	}
	return fmt.Sprintf("UI_IMPORT(%d)", int32(i))
}

// Imports returns every library→host opcode in ordinal order.
func Imports() []Import {
	out := make([]Import, 0, int(importDenseCount)+int(importMathEnd-ImportMemset))
	for i := Import(0); i < importDenseCount; i++ {
		out = append(out, i)
	}
	for i := ImportMemset; i < importMathEnd; i++ {
		out = append(out, i)
	}
	return out
}
