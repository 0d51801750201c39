package config

import "time"

// Base application details
const AppName = "medhapad"
const Version = "0.1.0"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = AppName + ".log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = true
const DefaultHistoryCap = 50
const DefaultFontSize = 14

// Diagnostics run this long after the last edit
const DefaultDiagnosticsDelay = 300 * time.Millisecond

const DefaultHTMLStyle = "monokai"
