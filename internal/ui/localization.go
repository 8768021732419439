package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyPlayingFrom        = "playing_from"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyToggleTheme        = "toggle_theme"
	KeyLoading            = "loading"
	KeyAccessDenied       = "access_denied"
	KeyRetry              = "retry"
	KeyEmptyLibrary       = "empty_library"
	KeyNothingPlaying     = "nothing_playing"
	KeyShowInFolder       = "show_in_folder"
	KeyPlaybackFailed     = "playback_failed"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyLibrarySettings    = "library_settings"
	KeyPlaybackSettings   = "playback_settings"
	KeyInterfaceSettings  = "interface_settings"
	KeyMusicDirectory     = "music_directory"
	KeyCatalogPath        = "catalog_path"
	KeyTrackDuration      = "track_duration"
	KeyProgressSource     = "progress_source"
	KeyDarkMode           = "dark_mode"
	KeyMute               = "mute"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeyRestartRequired    = "restart_required"
	KeyInvalidDuration    = "invalid_duration"
	KeySelectLanguage     = "select_language"
	KeyTrackDurationHint  = "track_duration_hint"
	KeyMusicDirectoryHint = "music_directory_hint"
	KeyCatalogPathHint    = "catalog_path_hint"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown codes keep the current one.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"es": "Español",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "SwipePlayer",
		KeyPlayingFrom:        "Playing from",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyToggleTheme:        "Toggle theme",
		KeyLoading:            "Loading your music...",
		KeyAccessDenied:       "Access to your music library was denied",
		KeyRetry:              "Retry",
		KeyEmptyLibrary:       "No tracks found",
		KeyNothingPlaying:     "Nothing playing",
		KeyShowInFolder:       "Show in folder",
		KeyPlaybackFailed:     "Playback failed",
		KeyErrorOpeningFile:   "Error opening file",
		KeyLibrarySettings:    "Library",
		KeyPlaybackSettings:   "Playback",
		KeyInterfaceSettings:  "Interface",
		KeyMusicDirectory:     "Music Directory",
		KeyCatalogPath:        "Catalog File",
		KeyTrackDuration:      "Track Duration (seconds)",
		KeyProgressSource:     "Progress Source",
		KeyDarkMode:           "Dark mode",
		KeyMute:               "Mute audio output",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyRestartRequired:    "Library and playback changes apply after restart.",
		KeyInvalidDuration:    "Track duration must be a whole number of seconds",
		KeySelectLanguage:     "Select language",
		KeyTrackDurationHint:  "1-3600",
		KeyMusicDirectoryHint: "Folder with .mp3 and .wav files",
		KeyCatalogPathHint:    "catalog.yaml",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle:           "SwipePlayer",
		KeyPlayingFrom:        "Reproduciendo desde",
		KeySettings:           "Ajustes",
		KeyFile:               "Archivo",
		KeyLanguage:           "Idioma",
		KeyToggleTheme:        "Cambiar tema",
		KeyLoading:            "Cargando tu música...",
		KeyAccessDenied:       "Se denegó el acceso a tu biblioteca de música",
		KeyRetry:              "Reintentar",
		KeyEmptyLibrary:       "No se encontraron pistas",
		KeyNothingPlaying:     "Nada en reproducción",
		KeyShowInFolder:       "Mostrar en carpeta",
		KeyPlaybackFailed:     "Error de reproducción",
		KeyErrorOpeningFile:   "Error al abrir el archivo",
		KeyLibrarySettings:    "Biblioteca",
		KeyPlaybackSettings:   "Reproducción",
		KeyInterfaceSettings:  "Interfaz",
		KeyMusicDirectory:     "Carpeta de música",
		KeyCatalogPath:        "Archivo de catálogo",
		KeyTrackDuration:      "Duración de pista (segundos)",
		KeyProgressSource:     "Fuente de progreso",
		KeyDarkMode:           "Modo oscuro",
		KeyMute:               "Silenciar salida de audio",
		KeySave:               "Guardar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Examinar",
		KeySettingsSaved:      "¡Ajustes guardados!",
		KeyRestartRequired:    "Los cambios de biblioteca y reproducción se aplican al reiniciar.",
		KeyInvalidDuration:    "La duración debe ser un número entero de segundos",
		KeySelectLanguage:     "Seleccionar idioma",
		KeyTrackDurationHint:  "1-3600",
		KeyMusicDirectoryHint: "Carpeta con archivos .mp3 y .wav",
		KeyCatalogPathHint:    "catalog.yaml",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "SwipePlayer",
		KeyPlayingFrom:        "Играет из",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyToggleTheme:        "Сменить тему",
		KeyLoading:            "Загрузка музыки...",
		KeyAccessDenied:       "Доступ к музыкальной библиотеке запрещён",
		KeyRetry:              "Повторить",
		KeyEmptyLibrary:       "Треки не найдены",
		KeyNothingPlaying:     "Ничего не играет",
		KeyShowInFolder:       "Показать в папке",
		KeyPlaybackFailed:     "Ошибка воспроизведения",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyLibrarySettings:    "Библиотека",
		KeyPlaybackSettings:   "Воспроизведение",
		KeyInterfaceSettings:  "Интерфейс",
		KeyMusicDirectory:     "Папка с музыкой",
		KeyCatalogPath:        "Файл каталога",
		KeyTrackDuration:      "Длительность трека (секунды)",
		KeyProgressSource:     "Источник прогресса",
		KeyDarkMode:           "Тёмная тема",
		KeyMute:               "Отключить звук",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyRestartRequired:    "Изменения библиотеки и воспроизведения вступят в силу после перезапуска.",
		KeyInvalidDuration:    "Длительность должна быть целым числом секунд",
		KeySelectLanguage:     "Выберите язык",
		KeyTrackDurationHint:  "1-3600",
		KeyMusicDirectoryHint: "Папка с файлами .mp3 и .wav",
		KeyCatalogPathHint:    "catalog.yaml",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "SwipePlayer",
		KeyPlayingFrom:        "Tocando de",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyToggleTheme:        "Alternar tema",
		KeyLoading:            "Carregando suas músicas...",
		KeyAccessDenied:       "O acesso à sua biblioteca de músicas foi negado",
		KeyRetry:              "Tentar novamente",
		KeyEmptyLibrary:       "Nenhuma faixa encontrada",
		KeyNothingPlaying:     "Nada tocando",
		KeyShowInFolder:       "Mostrar na pasta",
		KeyPlaybackFailed:     "Falha na reprodução",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyLibrarySettings:    "Biblioteca",
		KeyPlaybackSettings:   "Reprodução",
		KeyInterfaceSettings:  "Interface",
		KeyMusicDirectory:     "Pasta de Músicas",
		KeyCatalogPath:        "Arquivo de Catálogo",
		KeyTrackDuration:      "Duração da Faixa (segundos)",
		KeyProgressSource:     "Fonte de Progresso",
		KeyDarkMode:           "Modo escuro",
		KeyMute:               "Silenciar saída de áudio",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyRestartRequired:    "Alterações de biblioteca e reprodução valem após reiniciar.",
		KeyInvalidDuration:    "A duração deve ser um número inteiro de segundos",
		KeySelectLanguage:     "Selecione o idioma",
		KeyTrackDurationHint:  "1-3600",
		KeyMusicDirectoryHint: "Pasta com arquivos .mp3 e .wav",
		KeyCatalogPathHint:    "catalog.yaml",
	}
}
