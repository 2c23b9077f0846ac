package video_controller

import (
	"github.com/Tahir1605/frame-theory/repository"
)

var videoRepo repository.VideoRepository

// Init wires the handler dependencies at startup, or with doubles in tests.
func Init(repo repository.VideoRepository) {
	videoRepo = repo
}
