package client

import "github.com/fivetwenty-io/mangadex-client/pkg/mangadex"

// AuthClient implements mangadex.AuthClient.
type AuthClient struct {
	handle mangadex.Handle
}

// NewAuthClient creates a new auth client.
func NewAuthClient(handle mangadex.Handle) *AuthClient {
	return &AuthClient{handle: handle}
}

func (c *AuthClient) Login() *mangadex.LoginBuilder { return mangadex.NewLoginBuilder(c.handle) }

func (c *AuthClient) Logout() *mangadex.LogoutBuilder { return mangadex.NewLogoutBuilder(c.handle) }

func (c *AuthClient) Refresh() *mangadex.RefreshTokenBuilder {
	return mangadex.NewRefreshTokenBuilder(c.handle)
}

func (c *AuthClient) Check() *mangadex.CheckTokenBuilder {
	return mangadex.NewCheckTokenBuilder(c.handle)
}

// CaptchaClient implements mangadex.CaptchaClient.
type CaptchaClient struct {
	handle mangadex.Handle
}

// NewCaptchaClient creates a new captcha client.
func NewCaptchaClient(handle mangadex.Handle) *CaptchaClient {
	return &CaptchaClient{handle: handle}
}

func (c *CaptchaClient) Solve() *mangadex.SolveCaptchaBuilder {
	return mangadex.NewSolveCaptchaBuilder(c.handle)
}

// ChapterClient implements mangadex.ChapterClient.
type ChapterClient struct {
	handle mangadex.Handle
}

// NewChapterClient creates a new chapter client.
func NewChapterClient(handle mangadex.Handle) *ChapterClient {
	return &ChapterClient{handle: handle}
}

func (c *ChapterClient) List() *mangadex.ListChapterBuilder {
	return mangadex.NewListChapterBuilder(c.handle)
}

func (c *ChapterClient) Get() *mangadex.GetChapterBuilder {
	return mangadex.NewGetChapterBuilder(c.handle)
}

func (c *ChapterClient) Delete() *mangadex.DeleteChapterBuilder {
	return mangadex.NewDeleteChapterBuilder(c.handle)
}

// MangaClient implements mangadex.MangaClient.
type MangaClient struct {
	handle mangadex.Handle
}

// NewMangaClient creates a new manga client.
func NewMangaClient(handle mangadex.Handle) *MangaClient {
	return &MangaClient{handle: handle}
}

func (c *MangaClient) ReadingStatuses() *mangadex.MangaReadingStatusesBuilder {
	return mangadex.NewMangaReadingStatusesBuilder(c.handle)
}

func (c *MangaClient) ReadingStatus() *mangadex.MangaReadingStatusBuilder {
	return mangadex.NewMangaReadingStatusBuilder(c.handle)
}

func (c *MangaClient) UpdateReadingStatus() *mangadex.UpdateMangaReadingStatusBuilder {
	return mangadex.NewUpdateMangaReadingStatusBuilder(c.handle)
}

func (c *MangaClient) ListTags() *mangadex.ListTagsBuilder {
	return mangadex.NewListTagsBuilder(c.handle)
}

// UserClient implements mangadex.UserClient.
type UserClient struct {
	handle mangadex.Handle
}

// NewUserClient creates a new user client.
func NewUserClient(handle mangadex.Handle) *UserClient {
	return &UserClient{handle: handle}
}

func (c *UserClient) Me() *mangadex.GetMeBuilder { return mangadex.NewGetMeBuilder(c.handle) }

func (c *UserClient) IsFollowingGroup() *mangadex.IsFollowingBuilder {
	return mangadex.NewIsFollowingGroupBuilder(c.handle)
}

func (c *UserClient) IsFollowingUser() *mangadex.IsFollowingBuilder {
	return mangadex.NewIsFollowingUserBuilder(c.handle)
}

func (c *UserClient) IsFollowingManga() *mangadex.IsFollowingBuilder {
	return mangadex.NewIsFollowingMangaBuilder(c.handle)
}

func (c *UserClient) IsFollowingList() *mangadex.IsFollowingBuilder {
	return mangadex.NewIsFollowingListBuilder(c.handle)
}

// ScanlationGroupClient implements mangadex.ScanlationGroupClient.
type ScanlationGroupClient struct {
	handle mangadex.Handle
}

// NewScanlationGroupClient creates a new scanlation group client.
func NewScanlationGroupClient(handle mangadex.Handle) *ScanlationGroupClient {
	return &ScanlationGroupClient{handle: handle}
}

func (c *ScanlationGroupClient) Get() *mangadex.GetGroupBuilder {
	return mangadex.NewGetGroupBuilder(c.handle)
}

func (c *ScanlationGroupClient) Follow() *mangadex.FollowGroupBuilder {
	return mangadex.NewFollowGroupBuilder(c.handle)
}

// AuthorClient implements mangadex.AuthorClient.
type AuthorClient struct {
	handle mangadex.Handle
}

// NewAuthorClient creates a new author client.
func NewAuthorClient(handle mangadex.Handle) *AuthorClient {
	return &AuthorClient{handle: handle}
}

func (c *AuthorClient) Get() *mangadex.GetAuthorBuilder { return mangadex.NewGetAuthorBuilder(c.handle) }

// CustomListClient implements mangadex.CustomListClient.
type CustomListClient struct {
	handle mangadex.Handle
}

// NewCustomListClient creates a new custom list client.
func NewCustomListClient(handle mangadex.Handle) *CustomListClient {
	return &CustomListClient{handle: handle}
}

func (c *CustomListClient) Create() *mangadex.CreateCustomListBuilder {
	return mangadex.NewCreateCustomListBuilder(c.handle)
}

// CoverClient implements mangadex.CoverClient.
type CoverClient struct {
	handle mangadex.Handle
}

// NewCoverClient creates a new cover client.
func NewCoverClient(handle mangadex.Handle) *CoverClient {
	return &CoverClient{handle: handle}
}

func (c *CoverClient) Upload() *mangadex.UploadCoverBuilder {
	return mangadex.NewUploadCoverBuilder(c.handle)
}

// LegacyClient implements mangadex.LegacyClient.
type LegacyClient struct {
	handle mangadex.Handle
}

// NewLegacyClient creates a new legacy client.
func NewLegacyClient(handle mangadex.Handle) *LegacyClient {
	return &LegacyClient{handle: handle}
}

func (c *LegacyClient) IDMapping() *mangadex.LegacyIDMappingBuilder {
	return mangadex.NewLegacyIDMappingBuilder(c.handle)
}

// StatisticsClient implements mangadex.StatisticsClient.
type StatisticsClient struct {
	handle mangadex.Handle
}

// NewStatisticsClient creates a new statistics client.
func NewStatisticsClient(handle mangadex.Handle) *StatisticsClient {
	return &StatisticsClient{handle: handle}
}

func (c *StatisticsClient) Chapter() *mangadex.GetChapterStatisticsBuilder {
	return mangadex.NewGetChapterStatisticsBuilder(c.handle)
}

func (c *StatisticsClient) FindChapters() *mangadex.FindChapterStatisticsBuilder {
	return mangadex.NewFindChapterStatisticsBuilder(c.handle)
}
