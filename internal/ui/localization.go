package ui

import "github.com/pdftoolkit/pdf-toolkit/internal/session"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyMergeTab          = "merge_tab"
	KeySplitTab          = "split_tab"
	KeyMergeDescription  = "merge_description"
	KeySplitDescription  = "split_description"
	KeyDropHereMany      = "drop_here_many"
	KeyDropHereOne       = "drop_here_one"
	KeyOr                = "or"
	KeyBrowse            = "browse"
	KeyAddMore           = "add_more"
	KeyMergeButton       = "merge_button"
	KeySplitButton       = "split_button"
	KeyRemove            = "remove"
	KeyPagesFmt          = "pages_fmt"
	KeyPageRanges        = "page_ranges"
	KeyAddRange          = "add_range"
	KeyRangeHelp         = "range_help"
	KeyRangePlaceholder  = "range_placeholder"
	KeyRangeInvalid      = "range_invalid"
	KeyProcessing        = "processing"
	KeyResults           = "results"
	KeyView              = "view"
	KeyDownload          = "download"
	KeyDownloadAll       = "download_all"
	KeyStartOver         = "start_over"
	KeyOpenInViewer      = "open_in_viewer"
	KeyPagesLabel        = "pages_label"
	KeySizeLabel         = "size_label"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyClose             = "close"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyTheme             = "theme"
	KeyOutputDirectory   = "output_directory"
	KeyToastSeconds      = "toast_seconds"
	KeyValidationMode    = "validation_mode"
	KeyRevealAfterSave   = "reveal_after_save"
	KeySettingsSaved     = "settings_saved"
	KeySavedTo           = "saved_to"
	KeyErrorSaving       = "error_saving"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorReadingFile  = "error_reading_file"
	KeyTooFewFiles       = "too_few_files"
	KeyMergeSuccess      = "merge_success"
	KeyMergeError        = "merge_error"
	KeyInvalidPages      = "invalid_pages"
	KeySplitSuccess      = "split_success"
	KeySplitError        = "split_error"
	KeyNotPDF            = "not_pdf"
	KeyBusy              = "busy"
	KeyStepReading       = "step_reading"
	KeyStepAssembling    = "step_assembling"
	KeyStepWriting       = "step_writing"
	KeyInterfaceSettings = "interface_settings"
	KeyOutputSettings    = "output_settings"
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

// SetLanguage sets the current language
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
		"ru": "Русский",
		"pt": "Português",
	}
}

// Messages returns the workspace toast texts in the current language
func (l *Localization) Messages() session.Messages {
	return session.Messages{
		TooFewFiles:  l.GetText(KeyTooFewFiles),
		MergeSuccess: l.GetText(KeyMergeSuccess),
		MergeError:   l.GetText(KeyMergeError),
		InvalidPages: l.GetText(KeyInvalidPages),
		SplitSuccess: l.GetText(KeySplitSuccess),
		SplitError:   l.GetText(KeySplitError),
		NotPDF:       l.GetText(KeyNotPDF),
		Unreadable:   l.GetText(KeyErrorReadingFile),
		Busy:         l.GetText(KeyBusy),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "PDF Toolkit",
		KeyMergeTab:          "Merge PDFs",
		KeySplitTab:          "Split PDF",
		KeyMergeDescription:  "Combine multiple PDF files into a single document",
		KeySplitDescription:  "Extract pages from a PDF into separate documents",
		KeyDropHereMany:      "Drag & drop PDF files here",
		KeyDropHereOne:       "Drag & drop a PDF file here",
		KeyOr:                "or",
		KeyBrowse:            "Browse",
		KeyAddMore:           "Add More PDFs",
		KeyMergeButton:       "Merge PDFs",
		KeySplitButton:       "Split PDF",
		KeyRemove:            "Remove",
		KeyPagesFmt:          "%d pages",
		KeyPageRanges:        "Page ranges",
		KeyAddRange:          "Add Range / Page",
		KeyRangeHelp:         "Enter a range like 1-3 or specific pages like 1,4,7. Each entry becomes a separate PDF.",
		KeyRangePlaceholder:  "e.g. 1-3 or 2,5",
		KeyRangeInvalid:      "Not valid for this document",
		KeyProcessing:        "Processing...",
		KeyResults:           "Results",
		KeyView:              "View",
		KeyDownload:          "Download",
		KeyDownloadAll:       "Download all (zip)",
		KeyStartOver:         "Start over",
		KeyOpenInViewer:      "Open in viewer",
		KeyPagesLabel:        "Pages",
		KeySizeLabel:         "Size",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyClose:             "Close",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyTheme:             "Theme",
		KeyOutputDirectory:   "Output Directory",
		KeyToastSeconds:      "Notification Seconds",
		KeyValidationMode:    "PDF Validation",
		KeyRevealAfterSave:   "Reveal saved files",
		KeySettingsSaved:     "Settings saved successfully!",
		KeySavedTo:           "Saved to %s",
		KeyErrorSaving:       "Error saving file",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorReadingFile:  "Could not read %s",
		KeyTooFewFiles:       "Please upload at least 2 PDF files to merge",
		KeyMergeSuccess:      "PDFs merged successfully!",
		KeyMergeError:        "Error merging PDFs. Please try again.",
		KeyInvalidPages:      "Please enter valid pages",
		KeySplitSuccess:      "PDF split successfully!",
		KeySplitError:        "Error splitting PDF. Please check your page ranges and try again.",
		KeyNotPDF:            "%s is not a PDF file",
		KeyBusy:              "Please wait for the current operation to finish",
		KeyStepReading:       "Reading %s",
		KeyStepAssembling:    "Assembling %s",
		KeyStepWriting:       "Writing %s",
		KeyInterfaceSettings: "Interface Settings",
		KeyOutputSettings:    "Output Settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "PDF Инструменты",
		KeyMergeTab:          "Объединить PDF",
		KeySplitTab:          "Разделить PDF",
		KeyMergeDescription:  "Объедините несколько PDF файлов в один документ",
		KeySplitDescription:  "Извлеките страницы PDF в отдельные документы",
		KeyDropHereMany:      "Перетащите PDF файлы сюда",
		KeyDropHereOne:       "Перетащите PDF файл сюда",
		KeyOr:                "или",
		KeyBrowse:            "Обзор",
		KeyAddMore:           "Добавить ещё PDF",
		KeyMergeButton:       "Объединить PDF",
		KeySplitButton:       "Разделить PDF",
		KeyRemove:            "Удалить",
		KeyPagesFmt:          "Страниц: %d",
		KeyPageRanges:        "Диапазоны страниц",
		KeyAddRange:          "Добавить диапазон / страницу",
		KeyRangeHelp:         "Введите диапазон, например 1-3, или страницы через запятую: 1,4,7. Каждая запись станет отдельным PDF.",
		KeyRangePlaceholder:  "напр. 1-3 или 2,5",
		KeyRangeInvalid:      "Недопустимо для этого документа",
		KeyProcessing:        "Обработка...",
		KeyResults:           "Результаты",
		KeyView:              "Просмотр",
		KeyDownload:          "Скачать",
		KeyDownloadAll:       "Скачать все (zip)",
		KeyStartOver:         "Начать заново",
		KeyOpenInViewer:      "Открыть в просмотрщике",
		KeyPagesLabel:        "Страницы",
		KeySizeLabel:         "Размер",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyClose:             "Закрыть",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyTheme:             "Тема",
		KeyOutputDirectory:   "Папка сохранения",
		KeyToastSeconds:      "Секунд показа уведомлений",
		KeyValidationMode:    "Проверка PDF",
		KeyRevealAfterSave:   "Показывать сохранённые файлы",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeySavedTo:           "Сохранено в %s",
		KeyErrorSaving:       "Ошибка сохранения файла",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorReadingFile:  "Не удалось прочитать %s",
		KeyTooFewFiles:       "Загрузите минимум 2 PDF файла для объединения",
		KeyMergeSuccess:      "PDF успешно объединены!",
		KeyMergeError:        "Ошибка объединения PDF. Попробуйте ещё раз.",
		KeyInvalidPages:      "Введите корректные страницы",
		KeySplitSuccess:      "PDF успешно разделён!",
		KeySplitError:        "Ошибка разделения PDF. Проверьте диапазоны страниц и попробуйте ещё раз.",
		KeyNotPDF:            "%s не является PDF файлом",
		KeyBusy:              "Дождитесь завершения текущей операции",
		KeyStepReading:       "Чтение %s",
		KeyStepAssembling:    "Сборка %s",
		KeyStepWriting:       "Запись %s",
		KeyInterfaceSettings: "Настройки интерфейса",
		KeyOutputSettings:    "Настройки сохранения",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "PDF Toolkit",
		KeyMergeTab:          "Juntar PDFs",
		KeySplitTab:          "Dividir PDF",
		KeyMergeDescription:  "Combine vários arquivos PDF em um único documento",
		KeySplitDescription:  "Extraia páginas de um PDF em documentos separados",
		KeyDropHereMany:      "Arraste e solte arquivos PDF aqui",
		KeyDropHereOne:       "Arraste e solte um arquivo PDF aqui",
		KeyOr:                "ou",
		KeyBrowse:            "Navegar",
		KeyAddMore:           "Adicionar mais PDFs",
		KeyMergeButton:       "Juntar PDFs",
		KeySplitButton:       "Dividir PDF",
		KeyRemove:            "Remover",
		KeyPagesFmt:          "%d páginas",
		KeyPageRanges:        "Intervalos de páginas",
		KeyAddRange:          "Adicionar intervalo / página",
		KeyRangeHelp:         "Digite um intervalo como 1-3 ou páginas como 1,4,7. Cada entrada vira um PDF separado.",
		KeyRangePlaceholder:  "ex. 1-3 ou 2,5",
		KeyRangeInvalid:      "Inválido para este documento",
		KeyProcessing:        "Processando...",
		KeyResults:           "Resultados",
		KeyView:              "Ver",
		KeyDownload:          "Baixar",
		KeyDownloadAll:       "Baixar tudo (zip)",
		KeyStartOver:         "Recomeçar",
		KeyOpenInViewer:      "Abrir no visualizador",
		KeyPagesLabel:        "Páginas",
		KeySizeLabel:         "Tamanho",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyClose:             "Fechar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyTheme:             "Tema",
		KeyOutputDirectory:   "Diretório de Saída",
		KeyToastSeconds:      "Segundos de Notificação",
		KeyValidationMode:    "Validação de PDF",
		KeyRevealAfterSave:   "Mostrar arquivos salvos",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeySavedTo:           "Salvo em %s",
		KeyErrorSaving:       "Erro ao salvar arquivo",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyErrorReadingFile:  "Não foi possível ler %s",
		KeyTooFewFiles:       "Envie pelo menos 2 arquivos PDF para juntar",
		KeyMergeSuccess:      "PDFs juntados com sucesso!",
		KeyMergeError:        "Erro ao juntar PDFs. Tente novamente.",
		KeyInvalidPages:      "Digite páginas válidas",
		KeySplitSuccess:      "PDF dividido com sucesso!",
		KeySplitError:        "Erro ao dividir PDF. Verifique os intervalos de páginas e tente novamente.",
		KeyNotPDF:            "%s não é um arquivo PDF",
		KeyBusy:              "Aguarde a conclusão da operação atual",
		KeyStepReading:       "Lendo %s",
		KeyStepAssembling:    "Montando %s",
		KeyStepWriting:       "Gravando %s",
		KeyInterfaceSettings: "Configurações de Interface",
		KeyOutputSettings:    "Configurações de Saída",
	}
}
