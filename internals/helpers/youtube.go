package helper

import "regexp"

// The recognized YouTube URL shapes: watch?v=, youtu.be/, /embed/, /v/.
// The video ID runs until &, newline, ? or #.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?#]+)`),
}

// ExtractYouTubeID pulls the video ID out of a YouTube URL. Returns "" when
// the URL matches none of the recognized shapes.
func ExtractYouTubeID(url string) string {
	for _, re := range youtubePatterns {
		if m := re.FindStringSubmatch(url); len(m) == 2 && m[1] != "" {
			return m[1]
		}
	}
	return ""
}

// YouTubeThumbnail derives the max-resolution thumbnail URL for a video ID.
func YouTubeThumbnail(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/maxresdefault.jpg"
}
