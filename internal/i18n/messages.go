package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	LoginTitle    = "login.title"
	LoginUsername = "login.username"
	LoginPassword = "login.password"
	LoginCode     = "login.code"
	LoginBusy     = "login.busy"
	LoginFailed   = "login.failed"
	LoginMissing  = "login.missing"

	LotteryTitle    = "lottery.title"
	LotteryUser     = "lottery.user"
	LotteryLoading  = "lottery.loading"
	LotteryEmpty    = "lottery.empty"
	LotteryError    = "lottery.error"
	LotterySpinning = "lottery.spinning"
	LotteryWinner   = "lottery.winner"
	LotteryCopied   = "lottery.copied"
	LotteryTotal    = "lottery.total"
	LotteryOpenFail = "lottery.open_failed"

	HelpNext   = "help.next"
	HelpSubmit = "help.submit"
	HelpSpin   = "help.spin"
	HelpReload = "help.reload"
	HelpCopy   = "help.copy"
	HelpOpen   = "help.open"
	HelpLang   = "help.lang"
	HelpLogout = "help.logout"
	HelpQuit   = "help.quit"

	CLILoggedIn    = "cli.logged_in"
	CLILoggedOut   = "cli.logged_out"
	CLIAlreadyOut  = "cli.already_out"
	CLILanguageSet = "cli.language_set"
	CLINoPrizes    = "cli.no_prizes"
)

var messages = map[string][2]string{
	LoginTitle:    {"Sign in", "登录"},
	LoginUsername: {"Username", "用户名"},
	LoginPassword: {"Password", "密码"},
	LoginCode:     {"Captcha", "验证码"},
	LoginBusy:     {"signing in...", "登录中..."},
	LoginFailed:   {"login failed: %s", "登录失败：%s"},
	LoginMissing:  {"username and password are required", "请输入用户名和密码"},

	LotteryTitle:    {"Lottery Wheel", "幸运大转盘"},
	LotteryUser:     {"signed in as %s", "当前用户：%s"},
	LotteryLoading:  {"loading prizes...", "正在加载奖品..."},
	LotteryEmpty:    {"no prizes configured", "暂无奖品"},
	LotteryError:    {"could not load prizes: %s", "加载奖品失败：%s"},
	LotterySpinning: {"spinning...", "转动中..."},
	LotteryWinner:   {"Winner: %s", "恭喜获得：%s"},
	LotteryCopied:   {"copied to clipboard", "已复制到剪贴板"},
	LotteryTotal:    {"%d prizes", "共 %d 个奖品"},
	LotteryOpenFail: {"could not open browser: %s", "无法打开浏览器：%s"},

	HelpNext:   {"next", "下一项"},
	HelpSubmit: {"sign in", "登录"},
	HelpSpin:   {"spin", "抽奖"},
	HelpReload: {"reload", "刷新"},
	HelpCopy:   {"copy", "复制"},
	HelpOpen:   {"admin", "后台"},
	HelpLang:   {"中文", "English"},
	HelpLogout: {"logout", "退出登录"},
	HelpQuit:   {"quit", "退出"},

	CLILoggedIn:    {"Logged in as %s.", "已登录：%s。"},
	CLILoggedOut:   {"Logged out.", "已退出登录。"},
	CLIAlreadyOut:  {"Already logged out.", "当前未登录。"},
	CLILanguageSet: {"Language set to %s.", "语言已切换为 %s。"},
	CLINoPrizes:    {"No prizes.", "暂无奖品。"},
}

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, m := range messages {
		b.SetString(language.English, key, m[0]) //nolint:errcheck // static strings
		b.SetString(language.Chinese, key, m[1]) //nolint:errcheck // static strings
	}
	return b
}
