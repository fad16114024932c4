// Package legal holds the privacy policy and terms of service. The text is fixed in code and
// chosen by a Japanese/other flag rather than looked up in the dictionary.
package legal

import "github.com/development-sample/eceta.com/internal/i18n"

// Kind identifies a legal document.
type Kind string

const (
	Privacy Kind = "privacy"
	Terms   Kind = "terms"
)

// Kinds lists the published documents in footer order.
func Kinds() []Kind { return []Kind{Privacy, Terms} }

// Document is a titled legal text.
type Document struct {
	Kind     Kind
	Title    string
	Intro    string
	Sections []Section
	Contact  string
}

// Section has paragraphs, a bullet list, or both.
type Section struct {
	Heading    string
	Paragraphs []string
	Items      []string
}

// Lookup returns the document for a URL segment.
func Lookup(segment string, l i18n.Locale) (Document, bool) {
	switch Kind(segment) {
	case Privacy:
		return PrivacyPolicy(l.IsJa()), true
	case Terms:
		return TermsOfService(l.IsJa()), true
	default:
		return Document{}, false
	}
}

// PrivacyPolicy returns the privacy policy in Japanese when ja is set, English otherwise.
func PrivacyPolicy(ja bool) Document {
	if ja {
		return Document{
			Kind:  Privacy,
			Title: "プライバシーポリシー",
			Intro: "ECeta（以下、「当社」）は、サービス提供にあたり個人情報保護法その他関連法令を遵守し、利用目的の範囲内で適切に取り扱います。",
			Sections: []Section{
				{
					Heading: "1. 取得する情報",
					Items: []string{
						"ブランド申込フォーム：会社名、担当者情報、連絡先など",
						"ニュースレター登録：メールアドレス",
						"アクセス解析：匿名の利用履歴、端末情報",
					},
				},
				{
					Heading:    "2. 利用目的",
					Paragraphs: []string{"ユーザーサポート、サービス向上、法令順守のためにのみ利用します。第三者提供は、事前同意がある場合または法令に基づく場合に限ります。"},
				},
				{
					Heading:    "3. 安全管理",
					Paragraphs: []string{"データは暗号化されたストレージに保存し、アクセス権限を最小限に限定します。"},
				},
				{
					Heading:    "4. お問い合わせ",
					Paragraphs: []string{"privacy@eceta.com までご連絡ください。"},
				},
			},
			Contact: "privacy@eceta.com",
		}
	}
	return Document{
		Kind:  Privacy,
		Title: "Privacy Policy",
		Intro: "ECeta (“we”) complies with applicable privacy regulations and handles personal information appropriately within the stated purposes.",
		Sections: []Section{
			{
				Heading: "1. Information we collect",
				Items: []string{
					"Brand application forms: company details, contact information.",
					"Newsletter sign-ups: email address only.",
					"Analytics: anonymous usage data and device information.",
				},
			},
			{
				Heading:    "2. Purposes of use",
				Paragraphs: []string{"We use the information for support, product improvement, and legal compliance. We only share data with consent or when required by law."},
			},
			{
				Heading:    "3. Security",
				Paragraphs: []string{"Data is stored in encrypted systems with least-privilege access controls."},
			},
			{
				Heading:    "4. Contact",
				Paragraphs: []string{"Reach us at privacy@eceta.com for inquiries."},
			},
		},
		Contact: "privacy@eceta.com",
	}
}

// TermsOfService returns the terms in Japanese when ja is set, English otherwise.
func TermsOfService(ja bool) Document {
	if ja {
		return Document{
			Kind:  Terms,
			Title: "利用規約",
			Intro: "本規約は、ECetaが提供するすべてのオンラインサービスの利用条件を定めるものです。ユーザーは本規約に同意の上でサービスを利用するものとします。",
			Sections: []Section{
				{
					Heading:    "1. アカウント",
					Paragraphs: []string{"ブランド管理者は正確な情報を提供し、第三者への共有を禁止します。"},
				},
				{
					Heading:    "2. コンテンツと権利",
					Paragraphs: []string{"当社は没入型空間の演出に必要なライセンスを取得し、ユーザー生成コンテンツの適正管理を行います。"},
				},
				{
					Heading: "3. 禁止事項",
					Items: []string{
						"法令または公序良俗に反する行為",
						"システムへの不正アクセスやリバースエンジニアリング",
						"差別・誹謗中傷などのコミュニティガイドライン違反",
					},
				},
				{
					Heading:    "4. 免責",
					Paragraphs: []string{"不可抗力によるサービス中断について当社は責任を負いませんが、速やかに復旧に努めます。"},
				},
			},
		}
	}
	return Document{
		Kind:  Terms,
		Title: "Terms of Service",
		Intro: "These terms govern the use of ECeta services. By accessing our products you agree to the conditions below.",
		Sections: []Section{
			{
				Heading:    "1. Accounts",
				Paragraphs: []string{"Brand administrators must provide accurate information and keep credentials secure."},
			},
			{
				Heading:    "2. Content & rights",
				Paragraphs: []string{"We obtain necessary licenses for immersive experiences and reserve moderation rights over user-generated content."},
			},
			{
				Heading: "3. Prohibited activities",
				Items: []string{
					"Activities that violate laws or public order.",
					"Unauthorized access or reverse engineering.",
					"Discriminatory or harassing behavior.",
				},
			},
			{
				Heading:    "4. Liability",
				Paragraphs: []string{"We are not liable for outages caused by force majeure but will work to restore services promptly."},
			},
		},
	}
}
