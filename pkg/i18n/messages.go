package i18n

type entry struct {
	key, en, ar string
}

var entries = []entry{
	// Navegación
	{"nav.home", "Home", "الرئيسية"},
	{"nav.about", "About", "من نحن"},
	{"nav.services", "Services", "خدماتنا"},
	{"nav.projects", "Projects", "أعمالنا"},
	{"nav.advertisements", "Advertisements", "الإعلانات"},
	{"nav.contact", "Contact", "اتصل بنا"},
	{"nav.testimonials", "Testimonials", "آراء العملاء"},
	{"nav.faq", "FAQ", "الأسئلة الشائعة"},
	{"nav.admin", "Admin", "لوحة التحكم"},
	{"nav.login", "Log in", "تسجيل الدخول"},
	{"nav.logout", "Log out", "تسجيل الخروج"},
	{"lang.switch", "العربية", "English"},
	{"footer.rights", "© %s %s. All rights reserved.", "© %s %s. جميع الحقوق محفوظة."},

	// Páginas públicas
	{"home.hero.title", "Digital services that grow your business", "خدمات رقمية تنمّي أعمالك"},
	{"home.hero.subtitle", "Design, development and marketing under one roof.", "التصميم والتطوير والتسويق في مكان واحد."},
	{"home.services", "What we do", "ماذا نقدم"},
	{"home.projects", "Latest projects", "أحدث الأعمال"},
	{"home.why", "Why choose us", "لماذا تختارنا"},
	{"home.testimonials", "What our clients say", "ماذا يقول عملاؤنا"},
	{"home.cta", "Get in touch", "تواصل معنا"},
	{"about.mission", "Our mission", "رسالتنا"},
	{"about.vision", "Our vision", "رؤيتنا"},
	{"services.empty", "No services yet.", "لا توجد خدمات حالياً."},
	{"projects.empty", "No projects yet.", "لا توجد أعمال حالياً."},
	{"projects.all", "All", "الكل"},
	{"projects.visit", "Visit project", "زيارة المشروع"},
	{"ads.empty", "No advertisements match your search.", "لا توجد إعلانات مطابقة لبحثك."},
	{"ads.filter.category", "Category", "التصنيف"},
	{"ads.filter.all", "All categories", "كل التصنيفات"},
	{"ads.filter.q", "Search", "بحث"},
	{"ads.filter.min", "Min price", "أقل سعر"},
	{"ads.filter.max", "Max price", "أعلى سعر"},
	{"ads.filter.sort", "Sort by", "ترتيب حسب"},
	{"ads.filter.apply", "Apply", "تطبيق"},
	{"ads.sort.newest", "Newest", "الأحدث"},
	{"ads.sort.oldest", "Oldest", "الأقدم"},
	{"ads.sort.price_asc", "Price: low to high", "السعر: من الأقل إلى الأعلى"},
	{"ads.sort.price_desc", "Price: high to low", "السعر: من الأعلى إلى الأقل"},
	{"ads.sort.title", "Title", "العنوان"},
	{"ads.count", "%d results", "%d نتيجة"},
	{"ads.call", "Call", "اتصال"},
	{"ads.expires", "Valid until %s", "صالح حتى %s"},
	{"contact.phone", "Phone", "الهاتف"},
	{"contact.email", "Email", "البريد الإلكتروني"},
	{"contact.whatsapp", "WhatsApp", "واتساب"},
	{"contact.address", "Address", "العنوان"},
	{"contact.map", "Open map", "عرض الخريطة"},
	{"contact.follow", "Follow us", "تابعنا"},
	{"testimonials.empty", "No testimonials yet.", "لا توجد آراء بعد."},
	{"testimonials.submit.title", "Share your experience", "شاركنا تجربتك"},
	{"testimonials.send", "Send", "إرسال"},
	{"testimonials.thanks", "Thank you! Your testimonial will appear after review.", "شكراً لك! سيظهر رأيك بعد المراجعة."},
	{"faq.empty", "No questions yet.", "لا توجد أسئلة حالياً."},

	// Comunes
	{"common.error", "Something went wrong. Please try again later.", "حدث خطأ ما. يرجى المحاولة لاحقاً."},
	{"common.notfound", "The page you are looking for does not exist.", "الصفحة التي تبحث عنها غير موجودة."},
	{"common.back", "Back", "رجوع"},
	{"common.details", "Details", "التفاصيل"},
	{"common.brochure", "Download company profile (PDF)", "تحميل الملف التعريفي (PDF)"},
	{"common.save", "Save", "حفظ"},
	{"common.cancel", "Cancel", "إلغاء"},
	{"common.delete", "Delete", "حذف"},
	{"common.edit", "Edit", "تعديل"},
	{"common.new", "New", "جديد"},
	{"common.actions", "Actions", "الإجراءات"},
	{"common.yes", "Yes", "نعم"},
	{"common.no", "No", "لا"},
	{"common.empty", "Nothing here yet.", "لا توجد بيانات بعد."},
	{"error.title", "Error", "خطأ"},
	{"error.unavailable", "The service is temporarily unavailable.", "الخدمة غير متاحة مؤقتاً."},

	// Login
	{"login.title", "Admin login", "دخول المسؤول"},
	{"login.submit", "Log in", "دخول"},
	{"login.invalid", "Invalid email or password.", "البريد الإلكتروني أو كلمة المرور غير صحيحة."},
	{"login.forbidden", "Your account cannot access the admin area.", "لا يملك حسابك صلاحية الدخول إلى لوحة التحكم."},

	// Admin
	{"admin.dashboard", "Dashboard", "لوحة المعلومات"},
	{"admin.services", "Services", "الخدمات"},
	{"admin.projects", "Projects", "المشاريع"},
	{"admin.categories", "Categories", "التصنيفات"},
	{"admin.advertisements", "Advertisements", "الإعلانات"},
	{"admin.faqs", "FAQs", "الأسئلة الشائعة"},
	{"admin.testimonials", "Testimonials", "آراء العملاء"},
	{"admin.why", "Why choose us", "لماذا تختارنا"},
	{"admin.users", "Users", "المستخدمون"},
	{"admin.contact", "Contact info", "معلومات التواصل"},
	{"admin.about", "About section", "قسم من نحن"},
	{"admin.published", "Published", "منشور"},
	{"admin.draft", "Draft", "مسودة"},
	{"admin.visible", "Visible", "ظاهر"},
	{"admin.hidden", "Hidden", "مخفي"},
	{"admin.approved", "Approved", "معتمد"},
	{"admin.pending", "Pending", "قيد المراجعة"},
	{"admin.toggle", "Toggle", "تبديل"},
	{"admin.status", "Status", "الحالة"},
	{"admin.stats.services", "Services", "الخدمات"},
	{"admin.stats.projects", "Projects", "المشاريع"},
	{"admin.stats.categories", "Categories", "التصنيفات"},
	{"admin.stats.ads", "Advertisements", "الإعلانات"},
	{"admin.stats.ads_published", "Published ads", "الإعلانات المنشورة"},
	{"admin.stats.faqs", "FAQs", "الأسئلة"},
	{"admin.stats.testimonials", "Testimonials", "الآراء"},
	{"admin.stats.testimonials_pending", "Pending testimonials", "آراء بانتظار المراجعة"},
	{"admin.stats.users", "Users", "المستخدمون"},

	// Mensajes flash
	{"flash.created", "Created successfully.", "تمت الإضافة بنجاح."},
	{"flash.updated", "Saved successfully.", "تم الحفظ بنجاح."},
	{"flash.deleted", "Deleted successfully.", "تم الحذف بنجاح."},
	{"flash.toggled", "Status updated.", "تم تحديث الحالة."},
	{"flash.invalid", "Please check the highlighted fields.", "يرجى مراجعة الحقول المطلوبة."},
	{"flash.error", "The operation failed. Please try again.", "فشلت العملية. يرجى المحاولة مرة أخرى."},
	{"flash.notfound", "The item no longer exists.", "العنصر لم يعد موجوداً."},

	// Campos de formularios
	{"field.titleEn", "Title (English)", "العنوان (إنجليزي)"},
	{"field.titleAr", "Title (Arabic)", "العنوان (عربي)"},
	{"field.descriptionEn", "Description (English)", "الوصف (إنجليزي)"},
	{"field.descriptionAr", "Description (Arabic)", "الوصف (عربي)"},
	{"field.icon", "Icon", "الأيقونة"},
	{"field.image", "Image URL", "رابط الصورة"},
	{"field.order", "Order", "الترتيب"},
	{"field.link", "Link", "الرابط"},
	{"field.category", "Category", "التصنيف"},
	{"field.isVisible", "Visible", "ظاهر"},
	{"field.nameEn", "Name (English)", "الاسم (إنجليزي)"},
	{"field.nameAr", "Name (Arabic)", "الاسم (عربي)"},
	{"field.type", "Type", "النوع"},
	{"field.price", "Price", "السعر"},
	{"field.currency", "Currency", "العملة"},
	{"field.phone", "Phone", "الهاتف"},
	{"field.isPublished", "Published", "منشور"},
	{"field.expiresAt", "Expires at", "تاريخ الانتهاء"},
	{"field.questionEn", "Question (English)", "السؤال (إنجليزي)"},
	{"field.questionAr", "Question (Arabic)", "السؤال (عربي)"},
	{"field.answerEn", "Answer (English)", "الإجابة (إنجليزي)"},
	{"field.answerAr", "Answer (Arabic)", "الإجابة (عربي)"},
	{"field.name", "Name", "الاسم"},
	{"field.position", "Position / company", "المنصب / الشركة"},
	{"field.message", "Message", "الرسالة"},
	{"field.rating", "Rating (1-5)", "التقييم (1-5)"},
	{"field.lang", "Language", "اللغة"},
	{"field.isApproved", "Approved", "معتمد"},
	{"field.email", "Email", "البريد الإلكتروني"},
	{"field.whatsapp", "WhatsApp", "واتساب"},
	{"field.addressEn", "Address (English)", "العنوان (إنجليزي)"},
	{"field.addressAr", "Address (Arabic)", "العنوان (عربي)"},
	{"field.mapUrl", "Map URL", "رابط الخريطة"},
	{"field.facebook", "Facebook", "فيسبوك"},
	{"field.instagram", "Instagram", "إنستغرام"},
	{"field.linkedin", "LinkedIn", "لينكدإن"},
	{"field.twitter", "X (Twitter)", "إكس (تويتر)"},
	{"field.contentEn", "Content (English)", "المحتوى (إنجليزي)"},
	{"field.contentAr", "Content (Arabic)", "المحتوى (عربي)"},
	{"field.missionEn", "Mission (English)", "الرسالة (إنجليزي)"},
	{"field.missionAr", "Mission (Arabic)", "الرسالة (عربي)"},
	{"field.visionEn", "Vision (English)", "الرؤية (إنجليزي)"},
	{"field.visionAr", "Vision (Arabic)", "الرؤية (عربي)"},
	{"field.role", "Role", "الدور"},
	{"field.password", "Password", "كلمة المرور"},
	{"field.autoTranslate", "Fill empty Arabic fields automatically", "تعبئة الحقول العربية الفارغة تلقائياً"},
}
