package mangadex

import (
	"encoding/json"
	"strconv"

	"github.com/fivetwenty-io/mangadex-client/internal/constants"
	"github.com/google/uuid"
)

// ChapterAttributes of a chapter.
type ChapterAttributes struct {
	Title              string    `json:"title"              yaml:"title"`
	Volume             *string   `json:"volume"             yaml:"volume"`
	Chapter            *string   `json:"chapter"            yaml:"chapter"`
	Pages              int       `json:"pages"              yaml:"pages"`
	TranslatedLanguage Language  `json:"translatedLanguage" yaml:"translatedLanguage"`
	Uploader           *string   `json:"uploader,omitempty" yaml:"uploader,omitempty"`
	ExternalURL        *string   `json:"externalUrl"        yaml:"externalUrl"`
	Version            int       `json:"version"            yaml:"version"`
	CreatedAt          DateTime  `json:"createdAt"          yaml:"createdAt"`
	UpdatedAt          *DateTime `json:"updatedAt"          yaml:"updatedAt"`
	PublishAt          DateTime  `json:"publishAt"          yaml:"publishAt"`
	ReadableAt         DateTime  `json:"readableAt"         yaml:"readableAt"`
}

type chapterAttributesAlias ChapterAttributes

// UnmarshalJSON decodes the attributes; a null title becomes the empty string.
func (c *ChapterAttributes) UnmarshalJSON(b []byte) error {
	aux := struct {
		Title *string `json:"title"`
		*chapterAttributesAlias
	}{chapterAttributesAlias: (*chapterAttributesAlias)(c)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	c.Title = ""
	if aux.Title != nil {
		c.Title = *aux.Title
	}

	return nil
}

// UserAttributes of a user account.
type UserAttributes struct {
	Username string     `json:"username" yaml:"username"`
	Roles    []UserRole `json:"roles"    yaml:"roles"`
	Version  int        `json:"version"  yaml:"version"`
}

// ScanlationGroupAttributes of a scanlation group.
type ScanlationGroupAttributes struct {
	Name             string            `json:"name"                 yaml:"name"`
	AltNames         []LocalizedString `json:"altNames"             yaml:"altNames"`
	Website          *string           `json:"website"              yaml:"website"`
	IRCServer        *string           `json:"ircServer"            yaml:"ircServer"`
	IRCChannel       *string           `json:"ircChannel"           yaml:"ircChannel"`
	Discord          *string           `json:"discord"              yaml:"discord"`
	ContactEmail     *string           `json:"contactEmail"         yaml:"contactEmail"`
	Description      *string           `json:"description"          yaml:"description"`
	Twitter          *string           `json:"twitter"              yaml:"twitter"`
	MangaUpdates     *string           `json:"mangaUpdates"         yaml:"mangaUpdates"`
	FocusedLanguages []Language        `json:"focusedLanguages"     yaml:"focusedLanguages"`
	Locked           bool              `json:"locked"               yaml:"locked"`
	Official         bool              `json:"official"             yaml:"official"`
	Verified         bool              `json:"verified"             yaml:"verified"`
	Inactive         bool              `json:"inactive"             yaml:"inactive"`
	ExLicensed       *bool             `json:"exLicensed,omitempty" yaml:"exLicensed,omitempty"`
	PublishDelay     *string           `json:"publishDelay"         yaml:"publishDelay"`
	Version          int               `json:"version"              yaml:"version"`
	CreatedAt        DateTime          `json:"createdAt"            yaml:"createdAt"`
	UpdatedAt        DateTime          `json:"updatedAt"            yaml:"updatedAt"`
}

// AuthorAttributes of an author or artist.
type AuthorAttributes struct {
	Name      string          `json:"name"       yaml:"name"`
	ImageURL  *string         `json:"imageUrl"   yaml:"imageUrl"`
	Biography LocalizedString `json:"biography"  yaml:"biography"`
	Twitter   *string         `json:"twitter"    yaml:"twitter"`
	Pixiv     *string         `json:"pixiv"      yaml:"pixiv"`
	MelonBook *string         `json:"melonBook"  yaml:"melonBook"`
	FanBox    *string         `json:"fanBox"     yaml:"fanBox"`
	Booth     *string         `json:"booth"      yaml:"booth"`
	NicoVideo *string         `json:"nicoVideo"  yaml:"nicoVideo"`
	Skeb      *string         `json:"skeb"       yaml:"skeb"`
	Fantia    *string         `json:"fantia"     yaml:"fantia"`
	Tumblr    *string         `json:"tumblr"     yaml:"tumblr"`
	Youtube   *string         `json:"youtube"    yaml:"youtube"`
	Weibo     *string         `json:"weibo"      yaml:"weibo"`
	Naver     *string         `json:"naver"      yaml:"naver"`
	Website   *string         `json:"website"    yaml:"website"`
	Version   int             `json:"version"    yaml:"version"`
	CreatedAt DateTime        `json:"createdAt"  yaml:"createdAt"`
	UpdatedAt *DateTime       `json:"updatedAt"  yaml:"updatedAt"`
}

// TagAttributes of a manga tag.
type TagAttributes struct {
	Name        LocalizedString `json:"name"        yaml:"name"`
	Description LocalizedString `json:"description" yaml:"description"`
	Group       TagGroup        `json:"group"       yaml:"group"`
	Version     int             `json:"version"     yaml:"version"`
}

// CustomListAttributes of a user's custom list.
type CustomListAttributes struct {
	Name       string               `json:"name"       yaml:"name"`
	Visibility CustomListVisibility `json:"visibility" yaml:"visibility"`
	Version    int                  `json:"version"    yaml:"version"`
}

// CoverAttributes of a cover image.
type CoverAttributes struct {
	Description string    `json:"description" yaml:"description"`
	Volume      *string   `json:"volume"      yaml:"volume"`
	FileName    string    `json:"fileName"    yaml:"fileName"`
	Locale      *Language `json:"locale"      yaml:"locale"`
	Version     int       `json:"version"     yaml:"version"`
	CreatedAt   DateTime  `json:"createdAt"   yaml:"createdAt"`
	UpdatedAt   *DateTime `json:"updatedAt"   yaml:"updatedAt"`
}

// LegacyMappingIDAttributes maps a legacy numeric id to its current UUID.
type LegacyMappingIDAttributes struct {
	Type     LegacyMappingType `json:"type"     yaml:"type"`
	LegacyID uint64            `json:"legacyId" yaml:"legacyId"`
	NewID    uuid.UUID         `json:"newId"    yaml:"newId"`
}

// Comments summarises the forum thread of a resource.
type Comments struct {
	ThreadID     int `json:"threadId"     yaml:"threadId"`
	RepliesCount int `json:"repliesCount" yaml:"repliesCount"`
}

// ThreadURL returns the forum thread address.
func (c Comments) ThreadURL() string {
	return constants.ForumThreadURL + strconv.Itoa(c.ThreadID)
}

// ChapterStatistics of a single chapter. Comments is nil when no thread exists.
type ChapterStatistics struct {
	Comments *Comments `json:"comments" yaml:"comments"`
}

// Response shapes.
type (
	ChapterResponse         = EntityResponse[ChapterAttributes]
	ChapterCollection       = CollectionResponse[ChapterAttributes]
	UserResponse            = EntityResponse[UserAttributes]
	ScanlationGroupResponse = EntityResponse[ScanlationGroupAttributes]
	AuthorResponse          = EntityResponse[AuthorAttributes]
	TagCollection           = CollectionResponse[TagAttributes]
	CustomListResponse      = EntityResponse[CustomListAttributes]
	CoverResponse           = EntityResponse[CoverAttributes]
	LegacyMappingCollection = CollectionResponse[LegacyMappingIDAttributes]
)

// ReadingStatusesResponse maps manga ids to the user's reading status.
type ReadingStatusesResponse struct {
	Result   ResultType                  `json:"result"   yaml:"result"`
	Statuses map[uuid.UUID]ReadingStatus `json:"statuses" yaml:"statuses"`
}

// ReadingStatusResponse is the reading status of a single manga. Status is nil
// when the manga is not in the user's library.
type ReadingStatusResponse struct {
	Result ResultType     `json:"result" yaml:"result"`
	Status *ReadingStatus `json:"status" yaml:"status"`
}

// ChapterStatisticsResponse maps chapter ids to their statistics.
type ChapterStatisticsResponse struct {
	Result     ResultType                      `json:"result"     yaml:"result"`
	Statistics map[uuid.UUID]ChapterStatistics `json:"statistics" yaml:"statistics"`
}

// LoginResponse carries a freshly issued token pair.
type LoginResponse struct {
	Result ResultType `json:"result" yaml:"result"`
	Token  AuthTokens `json:"token"  yaml:"token"`
}

// RefreshTokenResponse carries the token pair issued by a refresh.
type RefreshTokenResponse struct {
	Result  ResultType `json:"result"            yaml:"result"`
	Token   AuthTokens `json:"token"             yaml:"token"`
	Message string     `json:"message,omitempty" yaml:"message,omitempty"`
}

// CheckTokenResponse describes the current session.
type CheckTokenResponse struct {
	Result          ResultType `json:"result"          yaml:"result"`
	IsAuthenticated bool       `json:"isAuthenticated" yaml:"isAuthenticated"`
	Roles           []UserRole `json:"roles"           yaml:"roles"`
	Permissions     []string   `json:"permissions"     yaml:"permissions"`
}
