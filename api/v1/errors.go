package v1

var (
	// common errors
	ErrSuccess             = newError(0, "ok")
	ErrBadRequest          = newError(400, "bad request")
	ErrNotFound            = newError(404, "not found")
	ErrInternalServerError = newError(500, "internal server error")

	// validation errors (user-correctable)
	ErrTemplateNameEmpty  = newError(1001, "template name must not be empty")
	ErrTemplateNameTaken  = newError(1002, "a template with this name already exists")
	ErrUnknownHostType    = newError(1003, "host type is not registered")
	ErrUnknownPortType    = newError(1004, "port type is not registered")
	ErrUnknownSwitchOS    = newError(1005, "switch OS is not registered")
	ErrOnlyVersion        = newError(1006, "cannot delete the only version of a template")
	ErrMetadataValueEmpty = newError(1007, "value must not be empty")
	ErrMetadataValueTaken = newError(1008, "value already exists")
	ErrRowsMissing        = newError(1009, "no rows supplied")
	ErrTemplateEmpty      = newError(1010, "template content must not be empty")
	ErrInvalidUpload      = newError(1011, "uploaded file could not be parsed")
	ErrInvalidSnapshot    = newError(1012, "snapshot file could not be parsed")

	// not-found errors
	ErrTemplateNotFound     = newError(2001, "template not found")
	ErrVersionNotFound      = newError(2002, "template version not found")
	ErrActiveVersionMissing = newError(2003, "active version record is missing")
)
