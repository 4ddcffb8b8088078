package template

import "errors"

var (
	ErrTemplateNotFound   = errors.New("schedule template not found")
	ErrTemplateNameExists = errors.New("schedule template with this name already exists")
	ErrUnknownReference   = errors.New("slot references an unknown shift or modality")
)
