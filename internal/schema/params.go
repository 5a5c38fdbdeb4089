package schema

// resourceID wraps a path id so it can run through the shared validator
type resourceID struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// ParseID coerces and validates a resource-identifying path component
func ParseID(raw string) (int64, error) {
	n, err := coerceInt("id", raw)
	if err != nil {
		return 0, err
	}
	v := resourceID{ID: int64(n)}
	if err := checkStruct(v); err != nil {
		return 0, err
	}
	return v.ID, nil
}

// protocolValue wraps a resolved scheme for validation
type protocolValue struct {
	Protocol string `json:"protocol" validate:"required,oneof=http https"`
}

// ParseProtocol validates the scheme a reverse proxy declared for the
// original client connection. Anything but plain "http" or "https" is a hard
// failure, never a silent fallback.
func ParseProtocol(raw string) (string, error) {
	v := protocolValue{Protocol: raw}
	if err := checkStruct(v); err != nil {
		return "", err
	}
	return v.Protocol, nil
}

// imageFormatValue wraps a requested image extension for validation
type imageFormatValue struct {
	Format string `json:"format" validate:"required,oneof=jpg jpeg png"`
}

// ParseImageFormat validates a requested profile picture extension
func ParseImageFormat(raw string) (string, error) {
	v := imageFormatValue{Format: raw}
	if err := checkStruct(v); err != nil {
		return "", err
	}
	return v.Format, nil
}

// FormatMatchesMIME reports whether a requested extension addresses the MIME
// type embedded in a stored picture. jpg and jpeg are the same image type.
func FormatMatchesMIME(format, mime string) bool {
	switch format {
	case "jpg", "jpeg":
		return mime == "image/jpeg"
	case "png":
		return mime == "image/png"
	default:
		return false
	}
}
